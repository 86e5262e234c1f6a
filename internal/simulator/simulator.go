// Package simulator plays competitions of many independent games between a
// roster of bots and aggregates the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/resistancebots/internal/bot"
	"github.com/lox/resistancebots/internal/classifier"
	"github.com/lox/resistancebots/internal/game"
	"github.com/lox/resistancebots/internal/gameid"
	"github.com/lox/resistancebots/internal/randutil"
	"github.com/lox/resistancebots/internal/statistics"
	"github.com/lox/resistancebots/internal/training"
)

// ErrNoScorer is returned when the roster needs a classifier and none was
// provided.
var ErrNoScorer = errors.New("roster requires a classifier")

// Options are the shared dependencies of every game in a competition.
type Options struct {
	Scorer classifier.Scorer
	Sink   training.Sink
	Clock  quartz.Clock
	Logger *log.Logger
}

// Summary is the outcome of a competition.
type Summary struct {
	Stats *statistics.Statistics
	// Games holds per-game results in game order.
	Games   []statistics.GameResult
	Elapsed time.Duration
}

// Simulator runs competitions
type Simulator struct {
	config *Config
	opts   Options
	logger *log.Logger
}

// New validates the configuration and returns a simulator.
func New(config *Config, opts Options) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if config.NeedsScorer() && opts.Scorer == nil {
		return nil, ErrNoScorer
	}
	if opts.Sink == nil {
		opts.Sink = training.Discard
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{
		config: config,
		opts:   opts,
		logger: opts.Logger.WithPrefix("simulator"),
	}, nil
}

// Run plays every configured game. Games are independent and run
// concurrently up to the configured parallelism; results are deterministic
// for a given seed regardless of parallelism.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	comp := s.config.Competition
	start := s.opts.Clock.Now()

	results := make([]statistics.GameResult, comp.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(comp.Parallelism)

	for i := 0; i < comp.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playGame(i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.opts.Clock.Since(start)
	s.logger.Info("Competition complete",
		"games", stats.Games,
		"resistance_rate", fmt.Sprintf("%.3f", stats.ResistanceRate()),
		"elapsed", elapsed)

	return &Summary{Stats: stats, Games: results, Elapsed: elapsed}, nil
}

// playGame plays game n with its own seed. The seed alone determines the
// seating, the spies and every bot's randomness.
func (s *Simulator) playGame(n int) (statistics.GameResult, error) {
	seed := s.config.Competition.Seed + int64(n)
	id := gameid.FromSeed(seed)
	rng := randutil.New(seed)
	logger := s.opts.Logger.With("game", gameid.Short(id))

	roster := s.seatRoster(rng)
	seats := make([]game.Seat, len(roster))
	for i, entry := range roster {
		player := game.Player{Index: i, Name: entry.Name}
		b, err := bot.New(entry.Strategy, bot.Options{
			Self:   player,
			Rng:    randutil.New(randutil.Derive(seed, i)),
			Logger: logger,
			Scorer: s.opts.Scorer,
			Sink:   s.opts.Sink,
		})
		if err != nil {
			return statistics.GameResult{}, fmt.Errorf("seat %d (%s): %w", i, entry.Name, err)
		}
		seats[i] = game.Seat{Player: player, Bot: b}
	}

	engine, err := game.NewEngine(seats, rng, logger)
	if err != nil {
		return statistics.GameResult{}, err
	}
	played, err := engine.Play()
	if err != nil {
		return statistics.GameResult{}, err
	}

	result := statistics.GameResult{
		ID:            id,
		Seed:          seed,
		ResistanceWon: played.ResistanceWon,
		Turns:         len(played.Missions),
	}
	for _, m := range played.Missions {
		if m.Forfeited {
			result.Forfeits++
		}
	}
	for i, entry := range roster {
		spy := played.Spies.Contains(seats[i].Player)
		result.Seats = append(result.Seats, statistics.SeatResult{
			Bot:      entry.Name,
			Strategy: entry.Strategy,
			Spy:      spy,
			Won:      spy != played.ResistanceWon,
		})
	}

	logger.Debug("Game complete",
		"seed", seed,
		"resistance_won", played.ResistanceWon,
		"missions", result.Turns)
	return result, nil
}

// seatRoster picks the roster entries for one table. Entries are drawn
// without replacement when the roster is large enough to fill the table,
// otherwise with replacement.
func (s *Simulator) seatRoster(rng *rand.Rand) []BotConfig {
	players := s.config.Competition.Players
	bots := s.config.Bots
	if len(bots) >= players {
		return randutil.Sample(rng, bots, players)
	}
	picked := make([]BotConfig, players)
	for i := range picked {
		picked[i] = bots[rng.IntN(len(bots))]
	}
	return picked
}
