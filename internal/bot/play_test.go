package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/resistancebots/internal/game"
	"github.com/lox/resistancebots/internal/randutil"
)

// Every strategy must survive full games at every table size without the
// engine rejecting a move.
func TestStrategiesPlayFullGames(t *testing.T) {
	strategies := Strategies()

	for size := game.MinPlayers; size <= game.MaxPlayers; size++ {
		for g := 0; g < 20; g++ {
			seed := int64(size*1000 + g)
			players := testTable(size)
			seats := make([]game.Seat, size)
			for i, p := range players {
				strategy := strategies[(g+i)%len(strategies)]
				b, err := New(strategy, testOptions(p, randutil.Derive(seed, i)))
				require.NoError(t, err)
				seats[i] = game.Seat{Player: p, Bot: b}
			}

			e, err := game.NewEngine(seats, randutil.New(seed), testLogger())
			require.NoError(t, err)
			result, err := e.Play()
			require.NoError(t, err, "size %d game %d", size, g)

			assert.True(t, result.Final.Wins == game.WinningScore || result.Final.Losses == game.WinningScore)
			assert.Equal(t, result.ResistanceWon, result.Final.Wins == game.WinningScore)
		}
	}
}
