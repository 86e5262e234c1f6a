package simulator

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/resistancebots/internal/bot"
	"github.com/lox/resistancebots/internal/game"
)

// Config represents a competition configuration file
type Config struct {
	Competition *CompetitionSettings `hcl:"competition,block"`
	Bots        []BotConfig          `hcl:"bot,block"`
}

// CompetitionSettings controls how many games are played and how
type CompetitionSettings struct {
	Games          int    `hcl:"games,optional"`
	Players        int    `hcl:"players,optional"`
	Seed           int64  `hcl:"seed,optional"`
	Parallelism    int    `hcl:"parallelism,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	Model          string `hcl:"model,optional"`
	TrainingOutput string `hcl:"training_output,optional"`
}

// BotConfig is one roster entry. Strategy defaults to the entry's name.
type BotConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
}

const (
	defaultGames    = 1000
	defaultPlayers  = 5
	defaultSeed     = 1
	defaultLogLevel = "info"
)

// DefaultConfig returns a competition between every registered strategy
func DefaultConfig() *Config {
	config := &Config{
		Competition: &CompetitionSettings{
			Games:       defaultGames,
			Players:     defaultPlayers,
			Seed:        defaultSeed,
			Parallelism: runtime.NumCPU(),
			LogLevel:    defaultLogLevel,
		},
	}
	for _, strategy := range bot.Strategies() {
		config.Bots = append(config.Bots, BotConfig{Name: strategy, Strategy: strategy})
	}
	return config
}

// LoadConfig loads a competition configuration from an HCL file. A missing
// file yields the default configuration.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Competition == nil {
		c.Competition = &CompetitionSettings{}
	}
	comp := c.Competition
	if comp.Games == 0 {
		comp.Games = defaultGames
	}
	if comp.Players == 0 {
		comp.Players = defaultPlayers
	}
	if comp.Seed == 0 {
		comp.Seed = defaultSeed
	}
	if comp.Parallelism == 0 {
		comp.Parallelism = runtime.NumCPU()
	}
	if comp.LogLevel == "" {
		comp.LogLevel = defaultLogLevel
	}

	if len(c.Bots) == 0 {
		c.Bots = DefaultConfig().Bots
	}
	for i := range c.Bots {
		if c.Bots[i].Strategy == "" {
			c.Bots[i].Strategy = c.Bots[i].Name
		}
	}
}

// Validate validates the competition configuration
func (c *Config) Validate() error {
	if c.Competition == nil {
		return fmt.Errorf("competition block is required")
	}
	comp := c.Competition
	if comp.Games <= 0 {
		return fmt.Errorf("games must be positive: %d", comp.Games)
	}
	if comp.Players < game.MinPlayers || comp.Players > game.MaxPlayers {
		return fmt.Errorf("%w: players must be between %d and %d, got %d",
			game.ErrTableSize, game.MinPlayers, game.MaxPlayers, comp.Players)
	}
	if comp.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive: %d", comp.Parallelism)
	}
	switch comp.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", comp.LogLevel)
	}

	if len(c.Bots) == 0 {
		return fmt.Errorf("at least one bot must be configured")
	}
	seen := make(map[string]bool, len(c.Bots))
	for _, b := range c.Bots {
		if seen[b.Name] {
			return fmt.Errorf("bot %s: duplicate name", b.Name)
		}
		seen[b.Name] = true
		if !bot.Known(b.Strategy) {
			return fmt.Errorf("bot %s: %w: %q", b.Name, bot.ErrUnknownStrategy, b.Strategy)
		}
	}

	return nil
}

// NeedsScorer reports whether any roster entry requires a classifier.
func (c *Config) NeedsScorer() bool {
	for _, b := range c.Bots {
		if bot.NeedsScorer(b.Strategy) {
			return true
		}
	}
	return false
}
