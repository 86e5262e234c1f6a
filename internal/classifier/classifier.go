// Package classifier scores players' likelihood of being a spy from their
// tracked statistics.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSchemaMismatch is returned when a model's shape does not match the
	// feature layout it is asked to score.
	ErrSchemaMismatch = errors.New("classifier schema mismatch")
	// ErrUnknownActivation is returned for unsupported layer activations.
	ErrUnknownActivation = errors.New("unknown activation")
)

// Classes is the width of the network output: not-spy, spy.
const Classes = 2

// Scorer returns one spy probability per input row, in input order.
type Scorer interface {
	SpyProbabilities(features [][]float64) ([]float64, error)
}

// Activation names accepted in model files.
const (
	Linear  = "linear"
	ReLU    = "relu"
	Tanh    = "tanh"
	Sigmoid = "sigmoid"
)

// LayerSpec is the serialised form of one dense layer. Weights has one row per
// input unit and one column per output unit.
type LayerSpec struct {
	Weights    [][]float64 `json:"weights"`
	Bias       []float64   `json:"bias"`
	Activation string      `json:"activation"`
}

// ModelSpec is the serialised model.
type ModelSpec struct {
	Name   string      `json:"name"`
	Layers []LayerSpec `json:"layers"`
}

type layer struct {
	weights    *mat.Dense
	bias       []float64
	activation func(float64) float64
}

// Model is a dense feed-forward network producing Classes logits. The final
// layer carries no softmax; SpyProbabilities applies it. A Model is immutable
// once built and safe for concurrent use.
type Model struct {
	name   string
	inputs int
	layers []layer
}

// Load reads a JSON model file and verifies it against the expected input
// width.
func Load(path string, inputs int) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}
	var spec ModelSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode model %s: %w", path, err)
	}
	if spec.Name == "" {
		spec.Name = path
	}
	return New(spec, inputs)
}

// New builds a model from its spec, checking that layer shapes chain from
// inputs features to Classes outputs.
func New(spec ModelSpec, inputs int) (*Model, error) {
	if len(spec.Layers) == 0 {
		return nil, fmt.Errorf("%w: model %q has no layers", ErrSchemaMismatch, spec.Name)
	}

	m := &Model{name: spec.Name, inputs: inputs}
	width := inputs
	for i, ls := range spec.Layers {
		if len(ls.Weights) != width {
			return nil, fmt.Errorf("%w: layer %d expects %d inputs, previous width is %d",
				ErrSchemaMismatch, i, len(ls.Weights), width)
		}
		outputs := len(ls.Bias)
		if outputs == 0 {
			return nil, fmt.Errorf("%w: layer %d has no outputs", ErrSchemaMismatch, i)
		}
		data := make([]float64, 0, width*outputs)
		for r, row := range ls.Weights {
			if len(row) != outputs {
				return nil, fmt.Errorf("%w: layer %d row %d has %d weights, want %d",
					ErrSchemaMismatch, i, r, len(row), outputs)
			}
			data = append(data, row...)
		}
		act, err := activation(ls.Activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		m.layers = append(m.layers, layer{
			weights:    mat.NewDense(width, outputs, data),
			bias:       append([]float64(nil), ls.Bias...),
			activation: act,
		})
		width = outputs
	}
	if width != Classes {
		return nil, fmt.Errorf("%w: model outputs %d classes, want %d", ErrSchemaMismatch, width, Classes)
	}
	return m, nil
}

// Name identifies the model in logs.
func (m *Model) Name() string {
	return m.name
}

// Inputs is the feature width the model accepts.
func (m *Model) Inputs() int {
	return m.inputs
}

// Verify scores a zero batch to prove the model runs end to end for the
// given feature width.
func (m *Model) Verify(inputs int) error {
	if inputs != m.inputs {
		return fmt.Errorf("%w: model takes %d features, schema has %d", ErrSchemaMismatch, m.inputs, inputs)
	}
	probs, err := m.SpyProbabilities([][]float64{make([]float64, inputs)})
	if err != nil {
		return err
	}
	if p := probs[0]; math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: probe produced %v", ErrSchemaMismatch, p)
	}
	return nil
}

// SpyProbabilities runs the batch through the network and returns the
// softmax probability of the spy class for each row.
func (m *Model) SpyProbabilities(features [][]float64) ([]float64, error) {
	if len(features) == 0 {
		return nil, nil
	}
	data := make([]float64, 0, len(features)*m.inputs)
	for i, row := range features {
		if len(row) != m.inputs {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrSchemaMismatch, i, len(row), m.inputs)
		}
		data = append(data, row...)
	}

	x := mat.NewDense(len(features), m.inputs, data)
	for _, l := range m.layers {
		var out mat.Dense
		out.Mul(x, l.weights)
		out.Apply(func(_, j int, v float64) float64 {
			return l.activation(v + l.bias[j])
		}, &out)
		x = &out
	}

	probs := make([]float64, len(features))
	for i := range probs {
		probs[i] = softmax(mat.Row(nil, i, x))[1]
	}
	return probs, nil
}

func softmax(logits []float64) []float64 {
	max := math.Inf(-1)
	for _, v := range logits {
		max = math.Max(max, v)
	}
	out := make([]float64, len(logits))
	sum := 0.0
	for i, v := range logits {
		out[i] = math.Exp(v - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func activation(name string) (func(float64) float64, error) {
	switch name {
	case "", Linear:
		return func(v float64) float64 { return v }, nil
	case ReLU:
		return func(v float64) float64 { return math.Max(0, v) }, nil
	case Tanh:
		return math.Tanh, nil
	case Sigmoid:
		return func(v float64) float64 { return 1 / (1 + math.Exp(-v)) }, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownActivation, name)
	}
}
