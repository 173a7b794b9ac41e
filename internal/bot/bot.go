// Package bot provides automated decision sources for the table.
package bot

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/holdem-sim/holdem/internal/game"
)

// Factory builds a decision source. rng may be nil for deterministic bots.
type Factory func(rng *rand.Rand, logger *log.Logger) game.DecisionSource

var registry = map[string]Factory{
	"heuristic": func(_ *rand.Rand, logger *log.Logger) game.DecisionSource { return NewHeuristic(logger) },
	"call":      func(_ *rand.Rand, _ *log.Logger) game.DecisionSource { return CallBot{} },
	"fold":      func(_ *rand.Rand, _ *log.Logger) game.DecisionSource { return FoldBot{} },
	"maniac":    func(rng *rand.Rand, _ *log.Logger) game.DecisionSource { return NewManiacBot(rng) },
	"random":    func(rng *rand.Rand, _ *log.Logger) game.DecisionSource { return NewRandBot(rng) },
}

// New builds the named strategy.
func New(strategy string, rng *rand.Rand, logger *log.Logger) (game.DecisionSource, error) {
	factory, ok := registry[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (known: %v)", strategy, Strategies())
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return factory(rng, logger), nil
}

// Strategies lists the registered strategy names.
func Strategies() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Known reports whether strategy is registered.
func Known(strategy string) bool {
	_, ok := registry[strategy]
	return ok
}
