package tracker

import (
	"strconv"

	"github.com/lox/resistancebots/internal/game"
)

// CosmeticColumns is the number of leading record columns that identify a
// row but are not classifier inputs.
const CosmeticColumns = 4

// Columns is the training record layout. The classifier was trained on
// exactly these columns, minus the cosmetic ones, in this order.
var Columns = []string{
	"turn", "tries", "index", "name",
	"missions_been_on", "failed_missions_been_on",
	"won_as_resistance", "won_as_spy",
	"mission_successes", "missions_passed_as_spy",
	"voted_up_0", "voted_up_1", "voted_up_2", "voted_up_3", "voted_up_4", "voted_up_5",
	"voted_down_0", "voted_down_1", "voted_down_2", "voted_down_3", "voted_down_4", "voted_down_5",
}

// LabelColumn is appended to training rows.
const LabelColumn = "spy"

// FeatureLen is the width of the classifier input.
var FeatureLen = len(Columns) - CosmeticColumns

// Record is one player's statistics at a point in the game.
type Record struct {
	Turn   int
	Tries  int
	Player game.Player
	Stats  Stats
}

// Record captures p's current statistics at the given state.
func (t *Tracker) Record(state game.State, p game.Player) Record {
	return Record{
		Turn:   state.Turn,
		Tries:  state.Tries,
		Player: p,
		Stats:  t.Stats(p),
	}
}

// Records captures every tracked player in table order.
func (t *Tracker) Records(state game.State) []Record {
	out := make([]Record, len(t.players))
	for i, p := range t.players {
		out[i] = t.Record(state, p)
	}
	return out
}

// Features returns the classifier input for the record. Its order follows
// Columns with the cosmetic columns dropped.
func (r Record) Features() []float64 {
	s := r.Stats
	out := make([]float64, 0, FeatureLen)
	out = append(out,
		float64(s.MissionsBeenOn),
		float64(s.FailedMissionsBeenOn),
		float64(s.WonAsResistance),
		float64(s.WonAsSpy),
		float64(s.MissionSuccesses),
		float64(s.MissionsPassedAsSpy),
	)
	for _, v := range s.VotedUp {
		out = append(out, float64(v))
	}
	for _, v := range s.VotedDown {
		out = append(out, float64(v))
	}
	return out
}

// Row renders the record as string fields in Columns order.
func (r Record) Row() []string {
	row := make([]string, 0, len(Columns))
	row = append(row,
		strconv.Itoa(r.Turn),
		strconv.Itoa(r.Tries),
		strconv.Itoa(r.Player.Index),
		r.Player.Name,
	)
	for _, f := range r.Features() {
		row = append(row, strconv.Itoa(int(f)))
	}
	return row
}

// LabelledRow is Row with the spy label appended.
func (r Record) LabelledRow(spy bool) []string {
	label := "0"
	if spy {
		label = "1"
	}
	return append(r.Row(), label)
}
