package bot

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/resistancebots/internal/classifier"
	"github.com/lox/resistancebots/internal/game"
	"github.com/lox/resistancebots/internal/randutil"
	"github.com/lox/resistancebots/internal/training"
)

// Options are the dependencies handed to every strategy at construction.
type Options struct {
	Self   game.Player
	Rng    *rand.Rand
	Logger *log.Logger

	// Scorer is required by the classifier-driven strategy.
	Scorer classifier.Scorer
	// Sink receives training rows from the logging strategy.
	Sink training.Sink
}

// base carries identity, randomness and logging, and gives strategies no-op
// callbacks they can override.
type base struct {
	self   game.Player
	spies  game.Team
	rng    *rand.Rand
	logger *log.Logger
}

func newBase(strategy string, opts Options) base {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	rng := opts.Rng
	if rng == nil {
		rng = randutil.New(int64(opts.Self.Index))
	}
	return base{
		self:   opts.Self,
		rng:    rng,
		logger: logger.WithPrefix(strategy).With("seat", opts.Self.Index),
	}
}

// Self returns the bot's own player.
func (b *base) Self() game.Player {
	return b.self
}

// IsSpy reports whether the bot was revealed as a spy this game.
func (b *base) IsSpy() bool {
	return b.spies.Contains(b.self)
}

// say is the bot's in-character table talk, logged at debug level.
func (b *base) say(msg string) {
	b.logger.Debug(msg, "say", true)
}

func (b *base) others(state game.State) game.Team {
	return state.Others(b.self)
}

// complete builds a team of count players led by the bot. It keeps the
// preferred players in order, then tops up at random from each pool in turn.
// It always returns count distinct players when the last pool is the table.
func (b *base) complete(preferred game.Team, count int, pools ...game.Team) game.Team {
	team := game.Team{b.self}
	for _, p := range preferred {
		if len(team) >= count {
			break
		}
		if !team.Contains(p) {
			team = append(team, p)
		}
	}
	for _, pool := range pools {
		if len(team) >= count {
			break
		}
		team = append(team, randutil.Sample(b.rng, pool.Without(team...), count-len(team))...)
	}
	if len(team) > count {
		team = team[:count]
	}
	return team
}

func (b *base) OnGameRevealed(_ game.State, _ game.Team, spies game.Team) {
	b.spies = spies.Clone()
}

func (b *base) OnVoteComplete(game.State, []bool) {}

func (b *base) OnMissionComplete(game.State, int) {}

func (b *base) OnGameComplete(game.State, bool, game.Team) {}
