package game

import "github.com/holdem-sim/holdem/poker"

// Situation is everything a DecisionSource sees when asked to act.
type Situation struct {
	Street    Street
	Community []poker.Card
	Hole      []poker.Card
	Blind     int
	// MaxRaise is the highest contribution level any player has reached
	// this round.
	MaxRaise int
	// MaxRaiseThisStreet is how far MaxRaise has moved during the current
	// street. Preflop it includes the big blind.
	MaxRaiseThisStreet int
	PartInPot          int
	Balance            int
	Opponents          int
}

// CallCost is what the player must add to match MaxRaise.
func (s Situation) CallCost() int {
	return max(s.MaxRaise-s.PartInPot, 0)
}

// StreetStart is the contribution level the street opened at.
func (s Situation) StreetStart() int {
	return s.MaxRaise - s.MaxRaiseThisStreet
}

// DecisionSource decides how a player acts. Implementations may block, for
// example while waiting on a human, but the table calls them synchronously.
type DecisionSource interface {
	Decide(Situation) Action
}

// DecisionFunc adapts a function to DecisionSource.
type DecisionFunc func(Situation) Action

func (f DecisionFunc) Decide(s Situation) Action { return f(s) }
