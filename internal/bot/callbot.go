package bot

import "github.com/holdem-sim/holdem/internal/game"

// CallBot matches every level and never raises.
type CallBot struct{}

func (CallBot) Decide(game.Situation) game.Action {
	return game.CheckAction()
}

// FoldBot checks when it is free and folds otherwise.
type FoldBot struct{}

func (FoldBot) Decide(s game.Situation) game.Action {
	if s.CallCost() == 0 {
		return game.CheckAction()
	}
	return game.FoldAction()
}
