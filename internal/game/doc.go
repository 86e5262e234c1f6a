// Package game implements the rules and a reference engine for The Resistance.
//
// The engine owns the State and drives every seated Bot through one game:
// spies are revealed, leaders propose teams, everyone votes, and the spies on
// an approved team decide whether to sabotage. Bots only ever see snapshots
// of the state, so nothing a bot does to its arguments leaks into the game.
//
// # Basic Usage
//
//	seats := []game.Seat{
//	    {Player: game.Player{Index: 0, Name: "a"}, Bot: a},
//	    // ... one seat per player, seat i holding index i
//	}
//	engine, err := game.NewEngine(seats, randutil.New(seed), logger)
//	if err != nil {
//	    return err
//	}
//	result, err := engine.Play()
//
// # Deterministic Testing
//
// All randomness comes from the *rand.Rand passed to NewEngine, and
// PlayWithSpies fixes the spy set, so a test can replay an exact game.
package game
