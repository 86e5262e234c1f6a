package bot

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/resistancebots/internal/game"
)

func TestSelectReturnsDistinctTeamWithSelf(t *testing.T) {
	for _, strategy := range Strategies() {
		t.Run(strategy, func(t *testing.T) {
			for _, size := range []int{5, 7, 10} {
				players := testTable(size)
				rules, err := game.RulesFor(size)
				require.NoError(t, err)
				spies := players[1 : 1+rules.Spies]

				for seat := 0; seat < size; seat++ {
					self := players[seat]
					b := newRevealed(t, strategy, players, self, spies, int64(seat))

					for turn := 1; turn <= game.MaxTurns; turn++ {
						count := rules.TeamSize(turn)
						state := game.State{Phase: game.Selecting, Players: players, Leader: self, Turn: turn, Tries: 1}
						team := b.Select(state, players, count)

						msg := fmt.Sprintf("size %d seat %d turn %d: %s", size, seat, turn, team)
						require.Len(t, team, count, msg)
						assert.True(t, team.Distinct(), msg)
						assert.True(t, team.Contains(self), msg)
						assert.True(t, team.SubsetOf(players), msg)
					}
				}
			}
		})
	}
}

func TestResistanceApprovesFinalAttempt(t *testing.T) {
	players := testTable(5)
	spies := game.Team{players[3], players[4]}
	self := players[0]

	teams := []game.Team{
		{players[1], players[2]},
		{players[3], players[4]},
		{players[2], players[3], players[4]},
		{players[0], players[3], players[4]},
	}

	for _, strategy := range Strategies() {
		t.Run(strategy, func(t *testing.T) {
			b := newRevealed(t, strategy, players, self, spies, 1)
			for _, team := range teams {
				state := game.State{
					Phase:   game.Voting,
					Players: players,
					Leader:  players[1],
					Team:    team,
					Turn:    2,
					Tries:   game.MaxTries,
				}
				for i := 0; i < 10; i++ {
					assert.True(t, b.Vote(state, team), "team %s", team)
				}
			}
		})
	}
}

func TestUnknownStrategy(t *testing.T) {
	_, err := New("oracle", Options{})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.False(t, Known("oracle"))
	assert.True(t, Known("jammer"))
	assert.NotEmpty(t, Describe("jammer"))
	assert.True(t, NeedsScorer("fatality"))
	assert.False(t, NeedsScorer("logger"))
}

func TestParanoidVotes(t *testing.T) {
	players := testTable(5)
	self := players[0]
	b := newRevealed(t, "paranoid", players, self, nil, 1)

	outside := game.Team{players[1], players[2]}
	state := game.State{Players: players, Leader: players[1], Team: outside, Turn: 1, Tries: 1}
	assert.False(t, b.Vote(state, outside))

	inside := game.Team{self, players[2]}
	state.Team = inside
	assert.True(t, b.Vote(state, inside))

	state.Leader = self
	state.Team = outside
	assert.True(t, b.Vote(state, outside))
}

func TestParanoidSabotage(t *testing.T) {
	players := testTable(5)
	spies := game.Team{players[0], players[1]}
	b := newRevealed(t, "paranoid", players, players[0], spies, 1)

	state := game.State{Players: players, Team: game.Team{players[0], players[2], players[3]}, Turn: 1}
	assert.False(t, b.Sabotage(state), "never on the first mission")

	state.Turn = 2
	assert.True(t, b.Sabotage(state))

	state.Team = game.Team{players[0], players[2]}
	assert.False(t, b.Sabotage(state), "never on a two-player mission")
}

func TestHippieAcceptsEverything(t *testing.T) {
	players := testTable(5)
	b := newRevealed(t, "hippie", players, players[0], game.Team{players[0], players[1]}, 1)
	team := game.Team{players[2], players[3], players[4]}
	assert.True(t, b.Vote(game.State{Players: players, Team: team, Turn: 1, Tries: 1}, team))
	assert.True(t, b.Sabotage(game.State{Players: players, Team: team, Turn: 1}))
}

func TestRandomAnnounce(t *testing.T) {
	players := testTable(5)
	b := NewRandom(testOptions(players[2], 9))
	b.OnGameRevealed(game.State{Players: players}, players, nil)

	for i := 0; i < 20; i++ {
		values := b.Announce(game.State{Players: players, Turn: 1})
		for p, v := range values {
			assert.NotEqual(t, players[2], p, "never announces about itself")
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestNeighborIsDeterministic(t *testing.T) {
	players := testTable(5)
	self := players[3]
	a := newRevealed(t, "neighbor", players, self, nil, 1)
	b := newRevealed(t, "neighbor", players, self, nil, 99)

	state := game.State{Players: players, Leader: self, Turn: 2, Tries: 1}
	team := a.Select(state, players, 3)
	assert.Equal(t, game.Team{players[3], players[4], players[0]}, team)
	assert.Equal(t, team, b.Select(state, players, 3))

	state.Team = team
	assert.True(t, a.Vote(state, team))

	far := game.Team{players[3], players[1]}
	state.Team = far
	assert.False(t, a.Vote(state, far))
}

func TestNeighborSpyRejectsFinalAttempt(t *testing.T) {
	players := testTable(5)
	b := newRevealed(t, "neighbor", players, players[0], game.Team{players[0], players[1]}, 1)
	team := game.Team{players[0], players[1]}
	assert.False(t, b.Vote(game.State{Players: players, Team: team, Turn: 1, Tries: game.MaxTries}, team))
}

func TestDeceiverSpyVotesForSingleSpyPairs(t *testing.T) {
	players := testTable(5)
	spies := game.Team{players[0], players[1]}
	b := newRevealed(t, "deceiver", players, players[0], spies, 1)

	state := game.State{Players: players, Turn: 1, Tries: 1}
	assert.True(t, b.Vote(state, game.Team{players[1], players[2]}))
	assert.False(t, b.Vote(state, game.Team{players[0], players[1]}))
	assert.False(t, b.Vote(state, game.Team{players[2], players[3]}))
}

func TestRuleFollowerSpy(t *testing.T) {
	players := testTable(5)
	spies := game.Team{players[0], players[4]}
	b := newRevealed(t, "rulefollower", players, players[0], spies, 1)

	state := game.State{Players: players, Turn: 2, Tries: 1}
	assert.True(t, b.Vote(state, game.Team{players[4], players[2]}))
	assert.False(t, b.Vote(state, game.Team{players[1], players[2]}))

	state.Tries = game.MaxTries
	assert.False(t, b.Vote(state, game.Team{players[4], players[2]}))
}
