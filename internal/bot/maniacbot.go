package bot

import (
	"math/rand/v2"

	"github.com/holdem-sim/holdem/internal/game"
)

// ManiacBot is an extremely aggressive bot that raises every decision and
// shoves a quarter of the time.
type ManiacBot struct {
	rng *rand.Rand
}

// NewManiacBot creates a maniac. A nil rng uses the global source.
func NewManiacBot(rng *rand.Rand) *ManiacBot {
	return &ManiacBot{rng: rng}
}

func (m *ManiacBot) Decide(s game.Situation) game.Action {
	if intN(m.rng, 4) == 0 {
		return game.AllInAction()
	}
	return game.RaiseTo(s.MaxRaise + 3*s.Blind)
}

// RandBot picks uniformly between folding, checking and raising, and shoves
// occasionally.
type RandBot struct {
	rng *rand.Rand
}

// NewRandBot creates a random bot. A nil rng uses the global source.
func NewRandBot(rng *rand.Rand) *RandBot {
	return &RandBot{rng: rng}
}

func (r *RandBot) Decide(s game.Situation) game.Action {
	switch intN(r.rng, 10) {
	case 0:
		return game.AllInAction()
	case 1, 2, 3:
		if s.CallCost() > 0 {
			return game.FoldAction()
		}
		return game.CheckAction()
	case 4, 5:
		return game.RaiseTo(s.MaxRaise + s.Blind*(1+intN(r.rng, 3)))
	}
	return game.CheckAction()
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
