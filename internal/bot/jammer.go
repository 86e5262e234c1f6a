package bot

import "github.com/lox/resistancebots/internal/game"

// Jammer plays simply as resistance, but as a spy goes against the common
// wisdom for synchronising sabotage with the other spies.
type Jammer struct {
	base
}

// NewJammer creates a new Jammer bot.
func NewJammer(opts Options) *Jammer {
	return &Jammer{base: newBase("jammer", opts)}
}

func (b *Jammer) Select(state game.State, players game.Team, count int) game.Team {
	if !b.IsSpy() {
		return b.complete(nil, count, b.others(state))
	}
	// Bring the other spies along so the deceptive sabotage can trip them up.
	b.logger.Debug("Picking the other spy to trick them!")
	resistance := state.Players.Without(b.spies...)
	return b.complete(b.spies.Without(b.self), count, resistance, state.Players)
}

func (b *Jammer) Vote(game.State, game.Team) bool {
	return true
}

func (b *Jammer) Sabotage(state game.State) bool {
	spies := state.Team.Intersect(b.spies)
	if len(spies) <= 1 {
		return true
	}

	// Bots that coordinate usually let the leader control the sabotage, so
	// do the opposite.
	if state.Leader == b.self {
		b.logger.Debug("Not coordinating, not sabotaging because I'm leader.")
		return false
	}
	if spies.Contains(state.Leader) {
		b.logger.Debug("Not coordinating, sabotaging despite the other spy being leader.")
		return true
	}

	// Coordinating on table position is the usual convention; invert it.
	other := spies.Without(b.self)[0]
	b.logger.Debug("Coordinating according to the position around the table...")
	return b.self.Index > other.Index
}
