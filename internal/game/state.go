package game

// Phase is the stage of the per-game lifecycle a bot is being called in.
type Phase int

const (
	Created Phase = iota
	Revealed
	Selecting
	Voting
	Executing
	Completed
)

func (p Phase) String() string {
	switch p {
	case Created:
		return "created"
	case Revealed:
		return "revealed"
	case Selecting:
		return "selecting"
	case Voting:
		return "voting"
	case Executing:
		return "executing"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// State is the read-only view of a game that bots receive with every call.
// The engine hands out snapshots, so a bot that keeps one does not observe
// later changes.
type State struct {
	Phase   Phase
	Players Team
	Leader  Player
	Team    Team

	// Turn is the mission number, 1..5.
	Turn int
	// Tries is the proposal attempt within the turn, 1..5. A rejected fifth
	// proposal hands the mission to the spies.
	Tries int

	// Wins counts missions won by the resistance, Losses those won by spies.
	Wins   int
	Losses int
}

// Snapshot returns a deep copy of the state.
func (s State) Snapshot() State {
	s.Players = s.Players.Clone()
	s.Team = s.Team.Clone()
	return s
}

// FinalAttempt reports whether the current proposal is the last one of the
// turn.
func (s State) FinalAttempt() bool {
	return s.Tries >= MaxTries
}

// PlayerIndex returns the position of p in the player list, or -1.
func (s State) PlayerIndex(p Player) int {
	return s.Players.IndexOf(p)
}

// Others returns every player except p.
func (s State) Others(p Player) Team {
	return s.Players.Without(p)
}
