package classifier

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/resistancebots/internal/tracker"
)

func TestLoadAndScore(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "tiny.json"), 3)
	require.NoError(t, err)
	require.NoError(t, m.Verify(3))
	assert.Equal(t, "tiny", m.Name())

	probs, err := m.SpyProbabilities([][]float64{
		{0, 0, 0},
		{2, 0, 0},
		{0, 2, 0},
	})
	require.NoError(t, err)
	require.Len(t, probs, 3)

	assert.InDelta(t, 0.5, probs[0], 1e-9)
	assert.InDelta(t, 1/(1+math.Exp(-2)), probs[1], 1e-9)
	assert.InDelta(t, 1/(1+math.Exp(2)), probs[2], 1e-9)
}

func TestSchemaMismatch(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "tiny.json"), 4)
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	m, err := Load(filepath.Join("testdata", "tiny.json"), 3)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Verify(18), ErrSchemaMismatch)

	_, err = m.SpyProbabilities([][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestNewRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		spec ModelSpec
		err  error
	}{
		{"no layers", ModelSpec{}, ErrSchemaMismatch},
		{"three classes", ModelSpec{Layers: []LayerSpec{{
			Weights: [][]float64{{1, 1, 1}},
			Bias:    []float64{0, 0, 0},
		}}}, ErrSchemaMismatch},
		{"ragged", ModelSpec{Layers: []LayerSpec{{
			Weights: [][]float64{{1}},
			Bias:    []float64{0, 0},
		}}}, ErrSchemaMismatch},
		{"activation", ModelSpec{Layers: []LayerSpec{{
			Weights:    [][]float64{{1, 1}},
			Bias:       []float64{0, 0},
			Activation: "swish",
		}}}, ErrUnknownActivation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.spec, 1)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestBaselineMatchesFeatureSchema(t *testing.T) {
	m := Baseline()
	require.NoError(t, m.Verify(tracker.FeatureLen))

	clean := make([]float64, tracker.FeatureLen)
	dirty := make([]float64, tracker.FeatureLen)
	dirty[featMissions] = 2
	dirty[featFailed] = 2

	probs, err := m.SpyProbabilities([][]float64{clean, dirty})
	require.NoError(t, err)
	assert.Less(t, probs[0], probs[1])

	again, err := m.SpyProbabilities([][]float64{clean, dirty})
	require.NoError(t, err)
	assert.Equal(t, probs, again)
}

func TestEmptyBatch(t *testing.T) {
	probs, err := Baseline().SpyProbabilities(nil)
	require.NoError(t, err)
	assert.Empty(t, probs)
}
