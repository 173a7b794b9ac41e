// Package game runs Texas Hold'em betting rounds.
//
// A Table owns the seated players, the deck and the blind schedule. Each call
// to PlayRound posts blinds, deals private cards, walks the four betting
// streets and settles the pot ledger at showdown:
//
//	rng := randutil.New(42)
//	t, err := game.NewTable(rng, []*game.Player{
//	    game.NewPlayer("Alice", 2500, bot.NewHeuristic(nil)),
//	    game.NewPlayer("Bob", 2500, bot.NewHeuristic(nil)),
//	}, game.WithBlind(50))
//	if err != nil {
//	    return err
//	}
//	result, err := t.PlayRound()
//
// # Architecture
//
// The table delegates to specialised components:
//   - bettingRound: polls DecisionSources for one street and reorders the
//     acting players whenever someone raises
//   - Ledger: pot layers that split automatically when a player goes all-in
//     for less than the current level
//   - poker.Deck and poker.Evaluate: cards and hand ranking
//
// Broken invariants (duplicate cards, markers appearing or disappearing) are
// reported as *poker.Fault errors and abort the round.
package game
