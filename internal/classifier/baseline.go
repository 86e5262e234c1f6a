package classifier

// Offsets into the 18-wide feature vector.
const (
	featMissions       = 0
	featFailed         = 1
	featSuccesses      = 4
	featVotedUpBase    = 6
	featVotedDownBase  = 12
	baselineFeatureLen = 18
)

// Baseline returns a hand-weighted single layer model over the standard
// feature layout. Spy logit rises with failed missions and with approving
// teams that carry failures; clean missions pull it down. It lets the
// classifier bot play before a trained model exists.
func Baseline() *Model {
	weights := make([][]float64, baselineFeatureLen)
	for i := range weights {
		weights[i] = []float64{0, 0}
	}
	weights[featMissions][1] = 0.1
	weights[featFailed][1] = 1.2
	weights[featSuccesses][1] = -0.6
	for bucket := 1; bucket < 6; bucket++ {
		// Backing suspect teams is suspicious, rejecting them is not.
		weights[featVotedUpBase+bucket][1] = 0.25 * float64(bucket)
		weights[featVotedDownBase+bucket][1] = -0.1 * float64(bucket)
	}

	m, err := New(ModelSpec{
		Name: "baseline",
		Layers: []LayerSpec{{
			Weights:    weights,
			Bias:       []float64{0, -0.8},
			Activation: Linear,
		}},
	}, baselineFeatureLen)
	if err != nil {
		panic("classifier: baseline model is malformed: " + err.Error())
	}
	return m
}
