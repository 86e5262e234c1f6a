package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/resistancebots/internal/randutil"
)

// Seat binds a bot to its place at the table.
type Seat struct {
	Player Player
	Bot    Bot
}

// Proposal is one team proposal and the votes it received.
type Proposal struct {
	Turn     int
	Try      int
	Leader   Player
	Team     Team
	Votes    []bool
	Approved bool
}

// Mission is the outcome of one turn.
type Mission struct {
	Turn   int
	Leader Player
	Team   Team
	// Sabotages is zero for forfeited missions.
	Sabotages int
	Failed    bool
	// Forfeited is set when all proposals of the turn were rejected.
	Forfeited bool
}

// Announcement is a suspicion estimate published by an Announcer.
type Announcement struct {
	Turn   int
	Source Player
	Values map[Player]float64
}

// Result is the full record of a played game.
type Result struct {
	ResistanceWon bool
	Spies         Team
	Proposals     []Proposal
	Missions      []Mission
	Announcements []Announcement
	Final         State
}

// Engine runs one game of The Resistance. It owns the state; bots only ever
// see snapshots of it.
type Engine struct {
	rules  Rules
	seats  []Seat
	rng    *rand.Rand
	logger *log.Logger
}

// NewEngine validates the seating and returns an engine for a single game.
// Seat i must hold the player with Index i.
func NewEngine(seats []Seat, rng *rand.Rand, logger *log.Logger) (*Engine, error) {
	rules, err := RulesFor(len(seats))
	if err != nil {
		return nil, err
	}
	for i, seat := range seats {
		if seat.Player.Index != i {
			return nil, fmt.Errorf("%w: seat %d holds player index %d", ErrSeating, i, seat.Player.Index)
		}
		if seat.Bot == nil {
			return nil, fmt.Errorf("%w: seat %d has no bot", ErrSeating, i)
		}
	}
	return &Engine{
		rules:  rules,
		seats:  seats,
		rng:    rng,
		logger: logger.WithPrefix("engine"),
	}, nil
}

// Rules returns the rules for this table.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Players returns the seated players in table order.
func (e *Engine) Players() Team {
	players := make(Team, len(e.seats))
	for i, seat := range e.seats {
		players[i] = seat.Player
	}
	return players
}

// Play draws the spies at random and plays the game to completion.
func (e *Engine) Play() (*Result, error) {
	spies := randutil.Sample(e.rng, e.Players(), e.rules.Spies)
	return e.PlayWithSpies(spies)
}

// PlayWithSpies plays the game with a fixed spy set.
func (e *Engine) PlayWithSpies(spies Team) (*Result, error) {
	players := e.Players()
	if len(spies) != e.rules.Spies || !spies.Distinct() || !spies.SubsetOf(players) {
		return nil, fmt.Errorf("%w: spies %s", ErrSeating, spies)
	}

	result := &Result{Spies: spies.Clone()}
	state := State{
		Phase:   Revealed,
		Players: players,
		Turn:    1,
		Tries:   1,
	}

	for _, seat := range e.seats {
		var known Team
		if spies.Contains(seat.Player) {
			known = spies.Clone()
		}
		seat.Bot.OnGameRevealed(state.Snapshot(), players.Clone(), known)
	}

	e.logger.Debug("Game revealed", "players", len(players), "spies", spies.String())

	leader := e.rng.IntN(len(players))
	for state.Wins < WinningScore && state.Losses < WinningScore {
		count := e.rules.TeamSize(state.Turn)

		approved := false
		for try := 1; try <= MaxTries && !approved; try++ {
			state.Tries = try
			state.Leader = players[leader]
			leader = (leader + 1) % len(players)

			state.Phase = Selecting
			state.Team = nil
			team := e.seats[state.Leader.Index].Bot.Select(state.Snapshot(), players.Clone(), count)
			if err := e.validateTeam(team, count); err != nil {
				return nil, fmt.Errorf("leader %s on turn %d: %w", state.Leader, state.Turn, err)
			}

			state.Phase = Voting
			state.Team = team.Clone()
			votes := make([]bool, len(players))
			for i, seat := range e.seats {
				votes[i] = seat.Bot.Vote(state.Snapshot(), team.Clone())
			}
			for _, seat := range e.seats {
				seat.Bot.OnVoteComplete(state.Snapshot(), append([]bool(nil), votes...))
			}

			approved = majority(votes)
			result.Proposals = append(result.Proposals, Proposal{
				Turn:     state.Turn,
				Try:      try,
				Leader:   state.Leader,
				Team:     team.Clone(),
				Votes:    votes,
				Approved: approved,
			})

			e.logger.Debug("Proposal voted",
				"turn", state.Turn,
				"try", try,
				"leader", state.Leader.String(),
				"team", team.String(),
				"approved", approved)
		}

		mission := Mission{Turn: state.Turn, Leader: state.Leader, Team: state.Team.Clone()}
		if !approved {
			// Five rejected proposals hand the mission to the spies.
			mission.Forfeited = true
			mission.Failed = true
			state.Losses++
		} else {
			state.Phase = Executing
			for _, member := range state.Team {
				if !spies.Contains(member) {
					continue
				}
				if e.seats[member.Index].Bot.Sabotage(state.Snapshot()) {
					mission.Sabotages++
				}
			}
			mission.Failed = e.rules.MissionFails(state.Turn, mission.Sabotages)
			if mission.Failed {
				state.Losses++
			} else {
				state.Wins++
			}
			for _, seat := range e.seats {
				seat.Bot.OnMissionComplete(state.Snapshot(), mission.Sabotages)
			}
		}
		result.Missions = append(result.Missions, mission)

		e.logger.Debug("Mission complete",
			"turn", state.Turn,
			"team", mission.Team.String(),
			"sabotages", mission.Sabotages,
			"failed", mission.Failed,
			"forfeited", mission.Forfeited,
			"wins", state.Wins,
			"losses", state.Losses)

		result.Announcements = append(result.Announcements, e.collectAnnouncements(state)...)

		if state.Wins < WinningScore && state.Losses < WinningScore {
			state.Turn++
		}
	}

	state.Phase = Completed
	result.ResistanceWon = state.Wins >= WinningScore
	result.Final = state.Snapshot()
	for _, seat := range e.seats {
		seat.Bot.OnGameComplete(state.Snapshot(), result.ResistanceWon, spies.Clone())
	}

	e.logger.Debug("Game complete", "resistanceWon", result.ResistanceWon, "turns", state.Turn)
	return result, nil
}

func (e *Engine) validateTeam(team Team, count int) error {
	if len(team) != count {
		return fmt.Errorf("%w: got %d players, want %d", ErrInvalidTeam, len(team), count)
	}
	if !team.Distinct() {
		return fmt.Errorf("%w: duplicate players in %s", ErrInvalidTeam, team)
	}
	for _, p := range team {
		if p.Index < 0 || p.Index >= len(e.seats) || e.seats[p.Index].Player != p {
			return fmt.Errorf("%w: %s is not seated", ErrInvalidTeam, p)
		}
	}
	return nil
}

func (e *Engine) collectAnnouncements(state State) []Announcement {
	var out []Announcement
	for _, seat := range e.seats {
		announcer, ok := seat.Bot.(Announcer)
		if !ok {
			continue
		}
		values := announcer.Announce(state.Snapshot())
		if len(values) == 0 {
			continue
		}
		out = append(out, Announcement{Turn: state.Turn, Source: seat.Player, Values: values})
		e.logger.Debug("Announcement", "source", seat.Player.String(), "values", len(values))
	}
	return out
}

func majority(votes []bool) bool {
	up := 0
	for _, v := range votes {
		if v {
			up++
		}
	}
	return up*2 > len(votes)
}
