package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/resistancebots/internal/classifier"
	"github.com/lox/resistancebots/internal/game"
	"github.com/lox/resistancebots/internal/randutil"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testTable(n int) game.Team {
	names := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank", "Grace", "Heidi", "Ivan", "Judy"}
	players := make(game.Team, n)
	for i := range players {
		players[i] = game.Player{Index: i, Name: names[i]}
	}
	return players
}

func testOptions(self game.Player, seed int64) Options {
	return Options{
		Self:   self,
		Rng:    randutil.New(seed),
		Logger: testLogger(),
		Scorer: classifier.Baseline(),
	}
}

// newRevealed builds a strategy for self and runs OnGameRevealed.
func newRevealed(t *testing.T, strategy string, players game.Team, self game.Player, spies game.Team, seed int64) game.Bot {
	t.Helper()
	b, err := New(strategy, testOptions(self, seed))
	require.NoError(t, err)

	var known game.Team
	if spies.Contains(self) {
		known = spies
	}
	b.OnGameRevealed(game.State{Phase: game.Revealed, Players: players, Turn: 1, Tries: 1}, players, known)
	return b
}

// fixedScorer returns the same probabilities for every batch.
type fixedScorer []float64

func (f fixedScorer) SpyProbabilities(features [][]float64) ([]float64, error) {
	return append([]float64(nil), f[:len(features)]...), nil
}
