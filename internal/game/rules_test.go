package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesFor(t *testing.T) {
	tests := []struct {
		players    int
		spies      int
		teams      [MaxTurns]int
		doubleFail bool
	}{
		{5, 2, [MaxTurns]int{2, 3, 2, 3, 3}, false},
		{6, 2, [MaxTurns]int{2, 3, 4, 3, 4}, false},
		{7, 3, [MaxTurns]int{2, 3, 3, 4, 4}, true},
		{10, 4, [MaxTurns]int{3, 4, 4, 5, 5}, true},
	}
	for _, tt := range tests {
		r, err := RulesFor(tt.players)
		require.NoError(t, err)
		assert.Equal(t, tt.spies, r.Spies)
		assert.Equal(t, tt.teams, r.TeamSizes)
		assert.Equal(t, tt.doubleFail, !r.MissionFails(4, 1))
		assert.True(t, r.MissionFails(4, 2))
		assert.False(t, r.MissionFails(1, 0))
	}

	_, err := RulesFor(4)
	assert.ErrorIs(t, err, ErrTableSize)
	_, err = RulesFor(11)
	assert.ErrorIs(t, err, ErrTableSize)
}

func TestTeamHelpers(t *testing.T) {
	a, b, c := Player{0, "a"}, Player{1, "b"}, Player{2, "c"}
	team := Team{a, b}

	assert.True(t, team.Contains(b))
	assert.False(t, team.Contains(c))
	assert.Equal(t, Team{b}, team.Without(a))
	assert.Equal(t, Team{b}, team.Intersect(Team{c, b}))
	assert.True(t, Team{a}.SubsetOf(team))
	assert.False(t, Team{a, c}.SubsetOf(team))
	assert.False(t, Team{a, a}.Distinct())
	assert.Equal(t, "[0-a, 1-b]", team.String())

	clone := team.Clone()
	clone[0] = c
	assert.Equal(t, a, team[0])
}

func TestStateHelpers(t *testing.T) {
	players := Team{{0, "a"}, {1, "b"}, {2, "c"}}
	s := State{Players: players, Tries: MaxTries}
	assert.True(t, s.FinalAttempt())
	assert.Equal(t, 1, s.PlayerIndex(players[1]))
	assert.Equal(t, Team{players[0], players[2]}, s.Others(players[1]))
	assert.Equal(t, "voting", Voting.String())
}
