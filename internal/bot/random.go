package bot

import (
	"github.com/lox/resistancebots/internal/game"
	"github.com/lox/resistancebots/internal/randutil"
)

// Random makes uniform random legal decisions.
type Random struct {
	base
}

// NewRandom creates a new Random bot.
func NewRandom(opts Options) *Random {
	return &Random{base: newBase("random", opts)}
}

func (b *Random) Select(state game.State, players game.Team, count int) game.Team {
	b.say("A completely random selection.")
	return b.complete(nil, count, b.others(state))
}

func (b *Random) Vote(state game.State, team game.Team) bool {
	// Rejecting the final attempt loses the mission for the resistance.
	if state.FinalAttempt() && !b.IsSpy() {
		return true
	}
	b.say("A completely random vote.")
	return b.rng.IntN(2) == 0
}

func (b *Random) Sabotage(game.State) bool {
	b.logger.Debug("A completely random sabotage.")
	return b.rng.IntN(2) == 0
}

// Announce publishes random suspicion levels for a random subset of the
// other players.
func (b *Random) Announce(state game.State) map[game.Player]float64 {
	others := b.others(state)
	subset := randutil.Sample(b.rng, others, b.rng.IntN(len(others)+1))
	out := make(map[game.Player]float64, len(subset))
	for _, p := range subset {
		out[p] = b.rng.Float64()
	}
	return out
}
