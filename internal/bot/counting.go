package bot

import (
	"github.com/lox/resistancebots/internal/game"
	"github.com/lox/resistancebots/internal/tracker"
)

// Counting trusts players in proportion to how few failed missions they have
// been on.
type Counting struct {
	base
	stats *tracker.Tracker
}

// NewCounting creates a new Counting bot.
func NewCounting(opts Options) *Counting {
	return &Counting{base: newBase("counting", opts)}
}

func (b *Counting) OnGameRevealed(state game.State, players game.Team, spies game.Team) {
	b.base.OnGameRevealed(state, players, spies)
	b.stats = tracker.New(players)
}

func (b *Counting) Select(state game.State, players game.Team, count int) game.Team {
	trusted := b.stats.RankByFailures().Without(b.self)
	return b.complete(trusted, count, state.Players)
}

func (b *Counting) Vote(state game.State, team game.Team) bool {
	if b.IsSpy() {
		return false
	}
	if state.FinalAttempt() {
		return true
	}
	suspects := b.stats.MostSuspected(2, b.self)
	if overlap := team.Intersect(suspects); len(overlap) > 0 {
		b.logger.Debug("Rejecting team with suspects", "suspects", overlap.String())
		return false
	}
	return true
}

func (b *Counting) Sabotage(game.State) bool {
	return true
}

func (b *Counting) OnMissionComplete(state game.State, sabotages int) {
	b.stats.RecordMission(state.Team, sabotages)
}
