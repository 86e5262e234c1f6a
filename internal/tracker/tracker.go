// Package tracker keeps the per-player statistics a bot accumulates over one
// game and turns them into training records and classifier features.
package tracker

import (
	"sort"

	"github.com/lox/resistancebots/internal/game"
)

// Buckets is the number of suspect-count buckets in the vote vectors.
const Buckets = 6

// Stats are the cumulative counters for one player.
type Stats struct {
	MissionsBeenOn       int
	FailedMissionsBeenOn int
	WonAsResistance      int
	WonAsSpy             int
	MissionSuccesses     int
	MissionsPassedAsSpy  int

	// VotedUp and VotedDown count votes bucketed by the team's total suspect
	// count at the time of the vote, clamped to Buckets-1.
	VotedUp   [Buckets]int
	VotedDown [Buckets]int
}

// Tracker owns one Stats per player. The zero value is not usable; call
// Reset at the start of every game.
type Tracker struct {
	players game.Team
	stats   map[int]*Stats
}

// New returns a tracker initialised for the given players.
func New(players game.Team) *Tracker {
	t := &Tracker{}
	t.Reset(players)
	return t
}

// Reset discards every counter and starts over for a new game.
func (t *Tracker) Reset(players game.Team) {
	t.players = players.Clone()
	t.stats = make(map[int]*Stats, len(players))
	for _, p := range players {
		t.stats[p.Index] = &Stats{}
	}
}

// Players returns the tracked players in table order.
func (t *Tracker) Players() game.Team {
	return t.players.Clone()
}

// Stats returns a copy of the counters for p.
func (t *Tracker) Stats(p game.Player) Stats {
	if s, ok := t.stats[p.Index]; ok {
		return *s
	}
	return Stats{}
}

// FailedMissions returns how many failed missions p has been on.
func (t *Tracker) FailedMissions(p game.Player) int {
	return t.Stats(p).FailedMissionsBeenOn
}

// MissionTotalSuspectCount sums the failed-mission counts of the team and
// clamps the result to a valid bucket index.
func (t *Tracker) MissionTotalSuspectCount(team game.Team) int {
	total := 0
	for _, p := range team {
		if s, ok := t.stats[p.Index]; ok {
			total += s.FailedMissionsBeenOn
		}
	}
	return clampBucket(total)
}

// RecordVotes buckets every player's vote on team. votes is aligned with the
// tracked players.
func (t *Tracker) RecordVotes(team game.Team, votes []bool) {
	bucket := t.MissionTotalSuspectCount(team)
	for i, p := range t.players {
		if i >= len(votes) {
			break
		}
		s := t.stats[p.Index]
		if votes[i] {
			s.VotedUp[bucket]++
		} else {
			s.VotedDown[bucket]++
		}
	}
}

// RecordMission updates the team members after a mission. Players not on the
// team are untouched.
func (t *Tracker) RecordMission(team game.Team, sabotages int) {
	for _, p := range team {
		s, ok := t.stats[p.Index]
		if !ok {
			continue
		}
		s.MissionsBeenOn++
		if sabotages > 0 {
			s.FailedMissionsBeenOn++
		} else {
			s.MissionSuccesses++
		}
	}
}

// RecordGameEnd finalises the win-conditioned counters once the spies are
// known. win is true when the resistance won.
func (t *Tracker) RecordGameEnd(win bool, spies game.Team) {
	for _, p := range t.players {
		s := t.stats[p.Index]
		spy := spies.Contains(p)
		switch {
		case win && !spy:
			s.WonAsResistance = 1
		case !win && spy:
			s.WonAsSpy = 1
		}
		if spy {
			s.MissionsPassedAsSpy = s.MissionSuccesses
		}
	}
}

// RankByFailures returns the players ordered by failed-mission count,
// ascending. Ties keep table order, so ranking unchanged stats always gives
// the same result.
func (t *Tracker) RankByFailures() game.Team {
	ranked := t.players.Clone()
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.stats[ranked[i].Index].FailedMissionsBeenOn < t.stats[ranked[j].Index].FailedMissionsBeenOn
	})
	return ranked
}

// MostSuspected returns up to n players with at least one failed mission,
// most suspected first. Players in exclude are never returned.
func (t *Tracker) MostSuspected(n int, exclude ...game.Player) game.Team {
	ranked := t.RankByFailures()
	var out game.Team
	for i := len(ranked) - 1; i >= 0 && len(out) < n; i-- {
		p := ranked[i]
		if game.Team(exclude).Contains(p) || t.stats[p.Index].FailedMissionsBeenOn == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func clampBucket(n int) int {
	if n < 0 {
		return 0
	}
	if n > Buckets-1 {
		return Buckets - 1
	}
	return n
}
