package training

import (
	"bytes"
	"encoding/csv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/resistancebots/internal/game"
	"github.com/lox/resistancebots/internal/tracker"
)

func TestCSVWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	p := game.Player{Index: 1, Name: "Bob"}
	rec := tracker.Record{Turn: 3, Tries: 1, Player: p}

	require.NoError(t, w.Write([]Sample{{Record: rec, Spy: true}}))
	require.NoError(t, w.Write([]Sample{{Record: rec, Spy: false}}))
	require.NoError(t, w.Close())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "turn", rows[0][0])
	assert.Equal(t, tracker.LabelColumn, rows[0][len(rows[0])-1])
	assert.Equal(t, "1", rows[1][len(rows[1])-1])
	assert.Equal(t, "0", rows[2][len(rows[2])-1])
	assert.Equal(t, 2, w.Written())
}

func TestCSVWriterConcurrent(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	rec := tracker.Record{Player: game.Player{Index: 0, Name: "Alice"}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Write([]Sample{{Record: rec}, {Record: rec}}))
		}()
	}
	wg.Wait()

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 17)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Write([]Sample{{}}))
}
