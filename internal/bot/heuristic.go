package bot

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/holdem-sim/holdem/internal/game"
	"github.com/holdem-sim/holdem/poker"
)

// Strategy is the stance the heuristic bot takes for one decision.
type Strategy int

const (
	Quit Strategy = iota
	JoinIfCheap
	Join
	Offensive
	AllIn
)

func (s Strategy) String() string {
	return [...]string{"quit", "join if cheap", "join", "offensive", "all-in"}[s]
}

// Point thresholds. A pair of aces scores 114.
const (
	pairOfAces  = 113
	anyPair     = 100
	twoPair     = 200
	threeOfKind = 300
	straight    = 400

	cheapBlind = 50
)

// Heuristic scores its cards with the hand evaluator and picks a strategy per
// street from fixed point thresholds.
type Heuristic struct {
	logger *log.Logger
}

// NewHeuristic creates a heuristic bot. A nil logger discards output.
func NewHeuristic(logger *log.Logger) *Heuristic {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Heuristic{logger: logger.WithPrefix("heuristic")}
}

// Decide implements game.DecisionSource.
func (h *Heuristic) Decide(s game.Situation) game.Action {
	points := handPoints(s)
	strategy := ChooseStrategy(s.Street, points)
	action := actFor(strategy, points, s)

	h.logger.Debug("decision",
		"street", s.Street,
		"hole", poker.FormatCards(s.Hole),
		"points", points,
		"strategy", strategy,
		"max_raise", s.MaxRaise,
		"part", s.PartInPot,
		"action", action)
	return action
}

func handPoints(s game.Situation) int {
	cards := append(append([]poker.Card(nil), s.Hole...), s.Community...)
	rank, err := poker.Evaluate(cards)
	if err != nil {
		return 0
	}
	return rank.Points
}

// ChooseStrategy maps hand points to a stance for the street.
func ChooseStrategy(street game.Street, points int) Strategy {
	switch street {
	case game.Preflop:
		switch {
		case points > pairOfAces:
			return Offensive
		case points > anyPair:
			return Join
		}
		return JoinIfCheap
	case game.Flop:
		switch {
		case points > threeOfKind:
			return AllIn
		case points > anyPair:
			return Offensive
		}
	case game.Turn:
		switch {
		case points > threeOfKind:
			return AllIn
		case points > anyPair:
			return Join
		}
	case game.River:
		switch {
		case points > straight:
			return AllIn
		case points > twoPair:
			return Offensive
		case points > anyPair:
			return Join
		}
	}
	return Quit
}

// targetLevel is the contribution level the strategy aims for, measured from
// the level the street opened at.
func targetLevel(strategy Strategy, points int, s game.Situation) int {
	base := s.StreetStart()
	switch strategy {
	case Offensive:
		switch {
		case points > pairOfAces:
			return base + 6*s.Blind
		case points > anyPair:
			return base + 4*s.Blind
		}
		return base + 2*s.Blind
	case Join:
		return base + 2*s.Blind
	case JoinIfCheap:
		if s.Blind <= cheapBlind {
			return base + s.Blind
		}
	}
	return base
}

func actFor(strategy Strategy, points int, s game.Situation) game.Action {
	if strategy == AllIn {
		return game.AllInAction()
	}
	if strategy != Quit {
		target := targetLevel(strategy, points, s)
		if target >= s.PartInPot+s.Balance {
			return game.AllInAction()
		}
		if target > s.MaxRaise {
			return game.RaiseTo(target)
		}
	}

	cost := s.CallCost()
	if cost == 0 {
		return game.CheckAction()
	}
	switch strategy {
	case Offensive:
		return game.CheckAction()
	case Join:
		if cost <= s.Balance/4 {
			return game.CheckAction()
		}
	case JoinIfCheap:
		if cost <= s.Balance/8 {
			return game.CheckAction()
		}
	}
	return game.FoldAction()
}
