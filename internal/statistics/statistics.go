package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SeatResult is one bot's outcome in one game.
type SeatResult struct {
	Bot      string // roster entry name
	Strategy string
	Spy      bool
	Won      bool
}

// GameResult is the outcome of a single game.
type GameResult struct {
	ID            string
	Seed          int64 // RNG seed for this game (for replay)
	ResistanceWon bool
	Turns         int
	Forfeits      int // missions lost to five rejected proposals
	Seats         []SeatResult
}

// BotStats tracks a roster entry across games, split by side.
type BotStats struct {
	Bot      string
	Strategy string

	ResistanceGames int
	ResistanceWins  int
	SpyGames        int
	SpyWins         int
}

// Games is the number of games played on either side.
func (b BotStats) Games() int {
	return b.ResistanceGames + b.SpyGames
}

// Wins is the number of games won on either side.
func (b BotStats) Wins() int {
	return b.ResistanceWins + b.SpyWins
}

// WinRate returns overall wins per game.
func (b BotStats) WinRate() float64 {
	return rate(b.Wins(), b.Games())
}

// ResistanceRate returns wins per game played as resistance.
func (b BotStats) ResistanceRate() float64 {
	return rate(b.ResistanceWins, b.ResistanceGames)
}

// SpyRate returns wins per game played as a spy.
func (b BotStats) SpyRate() float64 {
	return rate(b.SpyWins, b.SpyGames)
}

// ConfidenceInterval95 returns the 95% Wilson interval for the overall win
// rate.
func (b BotStats) ConfidenceInterval95() (float64, float64) {
	return Wilson(b.Wins(), b.Games(), 0.95)
}

// Statistics aggregates game results.
type Statistics struct {
	Games          int
	ResistanceWins int
	Forfeits       int
	Turns          []float64 // game length in missions, one per game

	bots map[string]*BotStats
}

// New returns empty statistics.
func New() *Statistics {
	return &Statistics{bots: make(map[string]*BotStats)}
}

// Add incorporates a game result.
func (s *Statistics) Add(result GameResult) {
	if s.bots == nil {
		s.bots = make(map[string]*BotStats)
	}
	s.Games++
	if result.ResistanceWon {
		s.ResistanceWins++
	}
	s.Forfeits += result.Forfeits
	s.Turns = append(s.Turns, float64(result.Turns))

	for _, seat := range result.Seats {
		b, ok := s.bots[seat.Bot]
		if !ok {
			b = &BotStats{Bot: seat.Bot, Strategy: seat.Strategy}
			s.bots[seat.Bot] = b
		}
		if seat.Spy {
			b.SpyGames++
			if seat.Won {
				b.SpyWins++
			}
		} else {
			b.ResistanceGames++
			if seat.Won {
				b.ResistanceWins++
			}
		}
	}
}

// Bots returns per-bot statistics ordered by win rate, best first.
func (s *Statistics) Bots() []BotStats {
	out := make([]BotStats, 0, len(s.bots))
	for _, b := range s.bots {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate() != out[j].WinRate() {
			return out[i].WinRate() > out[j].WinRate()
		}
		return out[i].Bot < out[j].Bot
	})
	return out
}

// Bot returns the statistics for one roster entry.
func (s *Statistics) Bot(name string) (BotStats, bool) {
	b, ok := s.bots[name]
	if !ok {
		return BotStats{}, false
	}
	return *b, true
}

// ResistanceRate returns the share of games won by the resistance.
func (s *Statistics) ResistanceRate() float64 {
	return rate(s.ResistanceWins, s.Games)
}

// TurnsMeanStdDev returns the mean and sample standard deviation of game
// length.
func (s *Statistics) TurnsMeanStdDev() (float64, float64) {
	if len(s.Turns) == 0 {
		return 0, 0
	}
	if len(s.Turns) == 1 {
		return s.Turns[0], 0
	}
	return stat.MeanStdDev(s.Turns, nil)
}

// Validate checks the aggregates are consistent with each other.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Turns) != s.Games {
		return fmt.Errorf("turns length (%d) does not match games count (%d)", len(s.Turns), s.Games)
	}
	if s.ResistanceWins > s.Games {
		return fmt.Errorf("resistance wins (%d) exceed games (%d)", s.ResistanceWins, s.Games)
	}
	for _, b := range s.bots {
		if b.ResistanceWins > b.ResistanceGames || b.SpyWins > b.SpyGames {
			return fmt.Errorf("bot %s has more wins than games", b.Bot)
		}
	}
	return nil
}

// Wilson returns the Wilson score interval for wins out of n at the given
// confidence level.
func Wilson(wins, n int, confidence float64) (float64, float64) {
	if n == 0 {
		return 0, 0
	}
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	p := float64(wins) / float64(n)
	nf := float64(n)

	denom := 1 + z*z/nf
	centre := (p + z*z/(2*nf)) / denom
	margin := z * math.Sqrt(p*(1-p)/nf+z*z/(4*nf*nf)) / denom
	return math.Max(0, centre-margin), math.Min(1, centre+margin)
}

func rate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}
