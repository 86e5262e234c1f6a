package bot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/resistancebots/internal/classifier"
	"github.com/lox/resistancebots/internal/game"
	"github.com/lox/resistancebots/internal/randutil"
	"github.com/lox/resistancebots/internal/tracker"
)

// ErrNoScorer is returned when the classifier-driven strategy is built
// without a classifier.
var ErrNoScorer = errors.New("classifier strategy requires a scorer")

// historyTurns is how many turns must have been played before successful
// team history is trusted over the classifier.
const historyTurns = 3

// verifier is implemented by scorers that can check themselves against a
// feature width.
type verifier interface {
	Verify(inputs int) error
}

// Fatality ranks players with a spy classifier over its tracked statistics,
// and negotiates teams from mission history once enough turns have passed.
type Fatality struct {
	base
	stats  *tracker.Tracker
	scorer classifier.Scorer

	failedTeams     []game.Team
	successfulTeams []game.Team
	// obviousSpies voted down a final attempt.
	obviousSpies game.Team
	// downvotes is the bot's own run of rejections this turn.
	downvotes int
}

// NewFatality creates a new Fatality bot. The scorer is verified against the
// feature schema up front.
func NewFatality(opts Options) (*Fatality, error) {
	if opts.Scorer == nil {
		return nil, ErrNoScorer
	}
	if v, ok := opts.Scorer.(verifier); ok {
		if err := v.Verify(tracker.FeatureLen); err != nil {
			return nil, fmt.Errorf("classifier rejected feature schema: %w", err)
		}
	}
	return &Fatality{base: newBase("fatality", opts), scorer: opts.Scorer}, nil
}

// SpyProbabilities scores every player from the current statistics.
func (b *Fatality) SpyProbabilities(state game.State) (map[game.Player]float64, error) {
	records := b.stats.Records(state)
	features := make([][]float64, len(records))
	for i, r := range records {
		features[i] = r.Features()
	}
	probs, err := b.scorer.SpyProbabilities(features)
	if err != nil {
		return nil, err
	}
	if len(probs) != len(records) {
		return nil, fmt.Errorf("%w: scored %d of %d players", classifier.ErrSchemaMismatch, len(probs), len(records))
	}
	out := make(map[game.Player]float64, len(records))
	for i, r := range records {
		out[r.Player] = probs[i]
	}
	return out, nil
}

// TrustRanking orders players from most to least trustworthy. Obvious spies
// are moved to the back. A scorer failure falls back to failed-mission
// counts.
func (b *Fatality) TrustRanking(state game.State) game.Team {
	ranked := b.stats.Players()
	probs, err := b.SpyProbabilities(state)
	if err != nil {
		b.logger.Error("Classifier failed, ranking by failed missions", "error", err)
		ranked = b.stats.RankByFailures()
	} else {
		sort.SliceStable(ranked, func(i, j int) bool {
			return probs[ranked[i]] < probs[ranked[j]]
		})
	}
	return append(ranked.Without(b.obviousSpies...), ranked.Intersect(b.obviousSpies)...)
}

// optimalTeam collects members of successful missions, skipping the bot and
// the most suspected players.
func (b *Fatality) optimalTeam(count int) game.Team {
	suspects := b.stats.MostSuspected(2, b.self)
	var team game.Team
	for _, t := range b.successfulTeams {
		for _, p := range t {
			if p == b.self || suspects.Contains(p) || team.Contains(p) {
				continue
			}
			team = append(team, p)
		}
		if len(team) >= count-1 {
			break
		}
	}
	return team
}

// discard reports whether team contains every member of a failed team.
func (b *Fatality) discard(team game.Team) bool {
	for _, failed := range b.failedTeams {
		if failed.SubsetOf(team) {
			return true
		}
	}
	return false
}

func (b *Fatality) Select(state game.State, players game.Team, count int) game.Team {
	b.say("Choose your Destiny!")

	if b.IsSpy() {
		resistance := state.Players.Without(b.spies...)
		return b.complete(randutil.Sample(b.rng, resistance, count-1), count, resistance, state.Players)
	}

	if len(b.successfulTeams) > 0 && state.Turn > historyTurns {
		team := b.optimalTeam(count).Without(b.obviousSpies...)
		if len(team) >= count-1 {
			b.logger.Debug("Picking from successful missions", "team", team.String())
			return b.complete(team, count, state.Players)
		}
	}

	trusted := b.TrustRanking(state).Without(b.self)
	return b.complete(trusted, count, state.Players)
}

func (b *Fatality) Vote(state game.State, team game.Team) bool {
	if b.IsSpy() {
		// Rejecting the final attempt wins the mission outright.
		if state.FinalAttempt() {
			return false
		}
		// A long run of rejections from a suspect draws attention.
		if b.downvotes >= 2 && b.stats.MostSuspected(2).Contains(b.self) {
			return true
		}
		return len(team.Intersect(b.spies)) > 0
	}

	if state.Leader == b.self || state.FinalAttempt() {
		return true
	}
	if len(team) == 3 && !team.Contains(b.self) {
		return false
	}
	if b.discard(team) {
		b.logger.Debug("Rejecting superset of a failed team", "team", team.String())
		return false
	}

	ranked := b.TrustRanking(state).Without(b.self)
	leastTrusted := ranked[max(0, len(ranked)-2):]
	if len(team.Intersect(leastTrusted)) > 0 {
		return false
	}
	if len(team.Intersect(b.obviousSpies)) > 0 {
		return false
	}
	return true
}

func (b *Fatality) Sabotage(state game.State) bool {
	if state.Turn == 1 || !b.IsSpy() {
		return false
	}
	if state.Wins == game.WinningScore-1 {
		return true
	}
	if state.Losses == game.WinningScore-1 {
		b.say("Brutality!")
		return true
	}
	// Leave the sabotage to a less suspected partner.
	suspects := b.stats.MostSuspected(2)
	if suspects.Contains(b.self) {
		for _, other := range state.Team.Intersect(b.spies).Without(b.self) {
			if !suspects.Contains(other) {
				return false
			}
		}
	}
	return true
}

func (b *Fatality) OnGameRevealed(state game.State, players game.Team, spies game.Team) {
	b.say("Test your Might!")
	b.base.OnGameRevealed(state, players, spies)
	b.stats = tracker.New(players)
	b.failedTeams = nil
	b.successfulTeams = nil
	b.obviousSpies = nil
	b.downvotes = 0
}

func (b *Fatality) OnVoteComplete(state game.State, votes []bool) {
	if i := state.PlayerIndex(b.self); i >= 0 && i < len(votes) {
		if votes[i] {
			b.say("Get Over Here!")
			b.downvotes = max(0, b.downvotes-1)
		} else {
			b.say("Gotcha!")
			b.downvotes++
		}
	}

	// Only spies gain from rejecting the final attempt.
	if state.FinalAttempt() {
		for i, p := range state.Players {
			if i < len(votes) && !votes[i] && p != b.self && !b.obviousSpies.Contains(p) {
				b.obviousSpies = append(b.obviousSpies, p)
				b.say("Finish Him/Her!")
			}
		}
	}

	b.stats.RecordVotes(state.Team, votes)
}

func (b *Fatality) OnMissionComplete(state game.State, sabotages int) {
	if sabotages > 0 {
		b.failedTeams = append(b.failedTeams, state.Team.Clone())
	} else {
		b.successfulTeams = append(b.successfulTeams, state.Team.Clone())
	}
	b.downvotes = 0
	b.stats.RecordMission(state.Team, sabotages)
}

func (b *Fatality) OnGameComplete(state game.State, win bool, spies game.Team) {
	b.stats.RecordGameEnd(win, spies)
	if win == b.IsSpy() {
		return
	}
	if state.Turn <= 3 {
		b.say("FLAWLESS VICTORY!")
	} else {
		b.say("FATALITY!")
	}
}
