package game

import "fmt"

const (
	// MaxTurns is the number of missions in a game.
	MaxTurns = 5
	// MaxTries is the number of proposals allowed per mission.
	MaxTries = 5
	// WinningScore is the number of missions a side needs.
	WinningScore = 3

	MinPlayers = 5
	MaxPlayers = 10
)

// Rules describes the table-size dependent parameters of a game.
type Rules struct {
	Players   int
	Spies     int
	TeamSizes [MaxTurns]int
	// FailsRequired is the number of sabotages that fail each mission.
	FailsRequired [MaxTurns]int
}

var spiesByTableSize = map[int]int{5: 2, 6: 2, 7: 3, 8: 3, 9: 3, 10: 4}

var teamSizesByTableSize = map[int][MaxTurns]int{
	5:  {2, 3, 2, 3, 3},
	6:  {2, 3, 4, 3, 4},
	7:  {2, 3, 3, 4, 4},
	8:  {3, 4, 4, 5, 5},
	9:  {3, 4, 4, 5, 5},
	10: {3, 4, 4, 5, 5},
}

// RulesFor returns the rules for a table of the given size.
func RulesFor(players int) (Rules, error) {
	if players < MinPlayers || players > MaxPlayers {
		return Rules{}, fmt.Errorf("%w: %d players (want %d-%d)", ErrTableSize, players, MinPlayers, MaxPlayers)
	}

	r := Rules{
		Players:       players,
		Spies:         spiesByTableSize[players],
		TeamSizes:     teamSizesByTableSize[players],
		FailsRequired: [MaxTurns]int{1, 1, 1, 1, 1},
	}
	// The fourth mission of a large game needs two saboteurs.
	if players >= 7 {
		r.FailsRequired[3] = 2
	}
	return r, nil
}

// TeamSize returns the team size for a 1-based turn.
func (r Rules) TeamSize(turn int) int {
	return r.TeamSizes[turn-1]
}

// MissionFails reports whether the given sabotage count fails the mission
// of a 1-based turn.
func (r Rules) MissionFails(turn, sabotages int) bool {
	return sabotages >= r.FailsRequired[turn-1]
}
