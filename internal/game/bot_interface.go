package game

// Bot is a Resistance player. The engine calls exactly one method at a time
// and every method returns before the next call is made.
type Bot interface {
	// Select proposes a team of exactly count distinct players that includes
	// the bot itself. Only called on the current leader.
	Select(state State, players Team, count int) Team

	// Vote approves or rejects the proposed team.
	Vote(state State, team Team) bool

	// Sabotage is only called on spies that are members of the executing team.
	Sabotage(state State) bool

	// OnGameRevealed starts a game. spies is empty unless the bot is a spy,
	// in which case it holds every spy including the bot.
	OnGameRevealed(state State, players Team, spies Team)

	// OnVoteComplete reports every player's vote, aligned with state.Players.
	OnVoteComplete(state State, votes []bool)

	// OnMissionComplete reports the number of sabotages on state.Team.
	OnMissionComplete(state State, sabotages int)

	// OnGameComplete ends the game. win is true when the resistance won.
	OnGameComplete(state State, win bool, spies Team)
}

// Announcer is implemented by bots that publish suspicion estimates after a
// mission. Values are in [0,1], keyed by player.
type Announcer interface {
	Announce(state State) map[Player]float64
}
