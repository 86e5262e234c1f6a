package bot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/resistancebots/internal/game"
)

// ErrUnknownStrategy is returned for strategy names not in the registry.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Factory builds a fresh bot for one game.
type Factory func(opts Options) (game.Bot, error)

type entry struct {
	factory     Factory
	description string
}

var registry = map[string]entry{
	"paranoid": {
		func(o Options) (game.Bot, error) { return NewParanoid(o), nil },
		"votes only for its own missions or on the final attempt",
	},
	"hippie": {
		func(o Options) (game.Bot, error) { return NewHippie(o), nil },
		"approves everything, always sabotages",
	},
	"random": {
		func(o Options) (game.Bot, error) { return NewRandom(o), nil },
		"uniform random decisions and announcements",
	},
	"neighbor": {
		func(o Options) (game.Bot, error) { return NewNeighbor(o), nil },
		"picks and trusts its seating neighbours, no randomness",
	},
	"deceiver": {
		func(o Options) (game.Bot, error) { return NewDeceiver(o), nil },
		"plays a spy that passes for resistance",
	},
	"rulefollower": {
		func(o Options) (game.Bot, error) { return NewRuleFollower(o), nil },
		"common-sense rules for both sides",
	},
	"jammer": {
		func(o Options) (game.Bot, error) { return NewJammer(o), nil },
		"spy that deliberately desynchronises sabotage",
	},
	"counting": {
		func(o Options) (game.Bot, error) { return NewCounting(o), nil },
		"avoids the players seen on the most failed missions",
	},
	"logger": {
		func(o Options) (game.Bot, error) { return NewLogger(o), nil },
		"plays along and records training statistics",
	},
	"fatality": {
		func(o Options) (game.Bot, error) {
			b, err := NewFatality(o)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
		"classifier-driven suspicion with team negotiation",
	},
}

// New builds the named strategy.
func New(strategy string, opts Options) (game.Bot, error) {
	e, ok := registry[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	return e.factory(opts)
}

// Strategies returns the registered strategy names, sorted.
func Strategies() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of a strategy.
func Describe(strategy string) string {
	return registry[strategy].description
}

// Known reports whether the strategy is registered.
func Known(strategy string) bool {
	_, ok := registry[strategy]
	return ok
}

// NeedsScorer reports whether the strategy requires a classifier.
func NeedsScorer(strategy string) bool {
	return strategy == "fatality"
}
