package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/resistancebots/internal/game"
)

func table(n int) game.Team {
	names := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank", "Grace"}
	players := make(game.Team, n)
	for i := range players {
		players[i] = game.Player{Index: i, Name: names[i]}
	}
	return players
}

func TestRecordMissionOnlyTouchesTeam(t *testing.T) {
	players := table(5)
	tr := New(players)
	team := game.Team{players[0], players[2]}

	tr.RecordMission(team, 1)

	for _, p := range players {
		s := tr.Stats(p)
		if team.Contains(p) {
			assert.Equal(t, 1, s.MissionsBeenOn, p.Name)
			assert.Equal(t, 1, s.FailedMissionsBeenOn, p.Name)
			assert.Equal(t, 0, s.MissionSuccesses, p.Name)
		} else {
			assert.Equal(t, Stats{}, s, p.Name)
		}
	}

	tr.RecordMission(team, 0)
	assert.Equal(t, 1, tr.FailedMissions(players[0]), "passed mission must not count as failed")
	assert.Equal(t, 1, tr.Stats(players[0]).MissionSuccesses)
	assert.Equal(t, 2, tr.Stats(players[0]).MissionsBeenOn)
}

func TestRecordVotesSingleBucket(t *testing.T) {
	players := table(5)

	tests := []struct {
		name       string
		failures   int
		wantBucket int
	}{
		{"clean team", 0, 0},
		{"two failures", 2, 2},
		{"clamped", 9, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(players)
			for i := 0; i < tt.failures; i++ {
				tr.RecordMission(game.Team{players[1]}, 1)
			}
			team := game.Team{players[0], players[1]}
			votes := []bool{true, false, true, false, true}

			tr.RecordVotes(team, votes)

			for i, p := range players {
				s := tr.Stats(p)
				up, down := sum(s.VotedUp), sum(s.VotedDown)
				assert.Equal(t, 1, up+down, "exactly one bucket per player")
				if votes[i] {
					assert.Equal(t, 1, s.VotedUp[tt.wantBucket])
				} else {
					assert.Equal(t, 1, s.VotedDown[tt.wantBucket])
				}
			}
		})
	}
}

func TestMissionTotalSuspectCountClamps(t *testing.T) {
	players := table(5)
	tr := New(players)
	for i := 0; i < 4; i++ {
		tr.RecordMission(game.Team{players[0], players[1]}, 2)
	}
	assert.Equal(t, 5, tr.MissionTotalSuspectCount(game.Team{players[0], players[1]}))
	assert.Equal(t, 4, tr.MissionTotalSuspectCount(game.Team{players[0], players[3]}))
	assert.Equal(t, 0, tr.MissionTotalSuspectCount(nil))
}

func TestRecordGameEnd(t *testing.T) {
	players := table(5)
	tr := New(players)
	tr.RecordMission(game.Team{players[0], players[1]}, 0)
	spies := game.Team{players[1], players[4]}

	tr.RecordGameEnd(false, spies)

	assert.Equal(t, 1, tr.Stats(players[1]).WonAsSpy)
	assert.Equal(t, 1, tr.Stats(players[1]).MissionsPassedAsSpy)
	assert.Equal(t, 0, tr.Stats(players[0]).WonAsResistance)
	assert.Equal(t, 0, tr.Stats(players[0]).MissionsPassedAsSpy)

	tr.Reset(players)
	tr.RecordGameEnd(true, spies)
	assert.Equal(t, 1, tr.Stats(players[0]).WonAsResistance)
	assert.Equal(t, 0, tr.Stats(players[4]).WonAsSpy)
}

func TestRankByFailuresIsStable(t *testing.T) {
	players := table(5)
	tr := New(players)
	tr.RecordMission(game.Team{players[3]}, 1)
	tr.RecordMission(game.Team{players[3], players[1]}, 1)

	first := tr.RankByFailures()
	second := tr.RankByFailures()

	require.Equal(t, first, second)
	assert.Equal(t, game.Team{players[0], players[2], players[4], players[1], players[3]}, first)
	assert.Equal(t, game.Team{players[3], players[1]}, tr.MostSuspected(2))
	assert.Equal(t, game.Team{players[1]}, tr.MostSuspected(2, players[3]))
}

func TestResetClearsState(t *testing.T) {
	players := table(5)
	tr := New(players)
	tr.RecordMission(players, 1)
	tr.Reset(players)
	for _, p := range players {
		assert.Equal(t, Stats{}, tr.Stats(p))
	}
}

func sum(v [Buckets]int) int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}
