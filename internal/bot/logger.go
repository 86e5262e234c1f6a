package bot

import (
	"github.com/lox/resistancebots/internal/game"
	"github.com/lox/resistancebots/internal/tracker"
	"github.com/lox/resistancebots/internal/training"
)

// Logger plays a deliberately plain game so as not to disturb the other
// players, and records everything it sees for classifier training.
type Logger struct {
	base
	stats *tracker.Tracker
	sink  training.Sink
}

// NewLogger creates a new Logger bot. Samples go to opts.Sink, or nowhere
// when it is nil.
func NewLogger(opts Options) *Logger {
	sink := opts.Sink
	if sink == nil {
		sink = training.Discard
	}
	return &Logger{base: newBase("logger", opts), sink: sink}
}

// Stats exposes the tracker for inspection.
func (b *Logger) Stats() *tracker.Tracker {
	return b.stats
}

func (b *Logger) Select(state game.State, players game.Team, count int) game.Team {
	return b.complete(nil, count, b.others(state))
}

func (b *Logger) Vote(game.State, game.Team) bool {
	return true
}

func (b *Logger) Sabotage(game.State) bool {
	return true
}

func (b *Logger) OnGameRevealed(state game.State, players game.Team, spies game.Team) {
	b.base.OnGameRevealed(state, players, spies)
	b.stats = tracker.New(players)
}

func (b *Logger) OnVoteComplete(state game.State, votes []bool) {
	b.stats.RecordVotes(state.Team, votes)
}

func (b *Logger) OnMissionComplete(state game.State, sabotages int) {
	b.stats.RecordMission(state.Team, sabotages)
}

func (b *Logger) OnGameComplete(state game.State, win bool, spies game.Team) {
	b.stats.RecordGameEnd(win, spies)

	records := b.stats.Records(state)
	samples := make([]training.Sample, len(records))
	for i, r := range records {
		samples[i] = training.Sample{Record: r, Spy: spies.Contains(r.Player)}
	}
	if err := b.sink.Write(samples); err != nil {
		b.logger.Error("Failed to write training samples", "error", err)
		return
	}
	b.logger.Debug("Wrote training samples", "samples", len(samples), "resistanceWon", win)
}
