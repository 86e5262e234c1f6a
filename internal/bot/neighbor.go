package bot

import "github.com/lox/resistancebots/internal/game"

// Neighbor picks and votes for the players seated after it and uses no
// randomness at all.
type Neighbor struct {
	base
}

// NewNeighbor creates a new Neighbor bot.
func NewNeighbor(opts Options) *Neighbor {
	return &Neighbor{base: newBase("neighbor", opts)}
}

// neighbors returns the table rotated so the bot comes first.
func (b *Neighbor) neighbors(state game.State) game.Team {
	i := state.PlayerIndex(b.self)
	if i < 0 {
		return game.Team{b.self}
	}
	out := make(game.Team, 0, len(state.Players))
	out = append(out, state.Players[i:]...)
	return append(out, state.Players[:i]...)
}

func (b *Neighbor) Select(state game.State, players game.Team, count int) game.Team {
	n := b.neighbors(state)
	if count > len(n) {
		count = len(n)
	}
	return n[:count].Clone()
}

func (b *Neighbor) Vote(state game.State, team game.Team) bool {
	if state.FinalAttempt() {
		return !b.IsSpy()
	}
	n := b.neighbors(state)
	size := min(len(team), len(n))
	trusted := append(n[:size].Clone(), b.self)
	return team.SubsetOf(trusted)
}

func (b *Neighbor) Sabotage(state game.State) bool {
	return len(state.Team) == 2 || state.Turn > 3
}
