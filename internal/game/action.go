package game

import "fmt"

// Street is a betting round within a hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// cardsRevealed is the number of community cards turned before the street.
func (s Street) cardsRevealed() int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	}
	return 0
}

// ActionKind is a player's decision.
type ActionKind int

const (
	NotDecided ActionKind = iota
	Check
	Raise
	Fold
	AllIn
)

func (k ActionKind) String() string {
	return [...]string{"not decided", "check", "raise", "fold", "all-in"}[k]
}

// Action is a decision plus the round contribution level the player ends at.
// For a raise the Amount is the new level ("raise to"); checks and folds carry
// the level they were made at.
type Action struct {
	Kind   ActionKind
	Amount int
}

// CheckAction matches the current level.
func CheckAction() Action { return Action{Kind: Check} }

// FoldAction leaves the round.
func FoldAction() Action { return Action{Kind: Fold} }

// RaiseTo raises the running level to amount.
func RaiseTo(amount int) Action { return Action{Kind: Raise, Amount: amount} }

// AllInAction commits every remaining marker.
func AllInAction() Action { return Action{Kind: AllIn} }

func (a Action) String() string {
	switch a.Kind {
	case Check:
		return "checks"
	case Fold:
		return "folds"
	case Raise:
		return fmt.Sprintf("raises %d", a.Amount)
	case AllIn:
		return fmt.Sprintf("goes all-in %d", a.Amount)
	}
	return "has not decided"
}

// BlindStatus marks which forced bet a player owes this round.
type BlindStatus int

const (
	NoBlind BlindStatus = iota
	LittleBlind
	BigBlind
)

func (b BlindStatus) String() string {
	return [...]string{"none", "little blind", "big blind"}[b]
}
