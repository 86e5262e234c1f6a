package bot

import "github.com/lox/resistancebots/internal/game"

// Paranoid votes everything down except its own missions.
type Paranoid struct {
	base
}

// NewParanoid creates a new Paranoid bot.
func NewParanoid(opts Options) *Paranoid {
	return &Paranoid{base: newBase("paranoid", opts)}
}

func (b *Paranoid) Select(state game.State, players game.Team, count int) game.Team {
	b.say("Picking myself and others I don't trust.")
	return b.complete(nil, count, b.others(state))
}

func (b *Paranoid) Vote(state game.State, team game.Team) bool {
	b.say("I only vote for my own missions.")
	if !b.IsSpy() && (team.Contains(b.self) || state.FinalAttempt()) {
		return true
	}
	return state.Leader == b.self
}

func (b *Paranoid) Sabotage(state game.State) bool {
	if state.Turn == 1 || len(state.Team) <= 2 {
		b.logger.Debug("Holding back on an early or small mission")
		return false
	}
	return true
}

// Hippie is OK with everything.
type Hippie struct {
	base
}

// NewHippie creates a new Hippie bot.
func NewHippie(opts Options) *Hippie {
	return &Hippie{base: newBase("hippie", opts)}
}

func (b *Hippie) Select(state game.State, players game.Team, count int) game.Team {
	b.say("Picking some cool dudes to go with me!")
	return b.complete(nil, count, b.others(state))
}

func (b *Hippie) Vote(game.State, game.Team) bool {
	b.say("Everything is OK with me, man.")
	return true
}

func (b *Hippie) Sabotage(game.State) bool {
	b.logger.Debug("Sabotaging is what spy dudes do, right?")
	return true
}

// Deceiver is good at passing for resistance while a spy.
type Deceiver struct {
	base
}

// NewDeceiver creates a new Deceiver bot.
func NewDeceiver(opts Options) *Deceiver {
	return &Deceiver{base: newBase("deceiver", opts)}
}

func (b *Deceiver) Select(state game.State, players game.Team, count int) game.Team {
	return b.complete(nil, count, b.others(state))
}

func (b *Deceiver) Vote(state game.State, team game.Team) bool {
	// The resistance approves the final attempt, so blend in.
	if state.FinalAttempt() {
		return true
	}
	if b.IsSpy() && len(team) == 2 {
		return len(team.Intersect(b.spies)) == 1
	}
	if len(team) == 3 && !team.Contains(b.self) {
		return false
	}
	return true
}

// Sabotage only hits missions large enough to hide in.
func (b *Deceiver) Sabotage(state game.State) bool {
	return len(state.Team) > 2
}

// RuleFollower captures common-sense play for both sides.
type RuleFollower struct {
	base
}

// NewRuleFollower creates a new RuleFollower bot.
func NewRuleFollower(opts Options) *RuleFollower {
	return &RuleFollower{base: newBase("rulefollower", opts)}
}

func (b *RuleFollower) Select(state game.State, players game.Team, count int) game.Team {
	return b.complete(nil, count, b.others(state))
}

func (b *RuleFollower) Vote(state game.State, team game.Team) bool {
	if state.FinalAttempt() {
		return !b.IsSpy()
	}
	if b.IsSpy() {
		return len(team.Intersect(b.spies)) > 0
	}
	if len(team) == 3 && !team.Contains(b.self) {
		return false
	}
	return true
}

func (b *RuleFollower) Sabotage(game.State) bool {
	return true
}
