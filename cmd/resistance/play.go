package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/lox/resistancebots/internal/classifier"
	"github.com/lox/resistancebots/internal/simulator"
	"github.com/lox/resistancebots/internal/tracker"
	"github.com/lox/resistancebots/internal/training"
)

type PlayCmd struct {
	Config         string `short:"c" default:"resistance.hcl" help:"Path to HCL configuration file"`
	Games          int    `short:"n" help:"Number of games to play (overrides config)"`
	Players        int    `short:"p" help:"Players per table, 5-10 (overrides config)"`
	Seed           int64  `short:"s" help:"Base RNG seed (overrides config)"`
	Parallelism    int    `short:"j" help:"Games played concurrently (overrides config)"`
	Model          string `short:"m" help:"Spy classifier weights, JSON (overrides config)"`
	TrainingOutput string `short:"o" help:"Write logger bot training rows to this CSV file (overrides config)"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := simulator.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	c.override(cfg, cli)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.Competition.LogLevel)

	var scorer classifier.Scorer
	if cfg.Competition.Model != "" {
		model, err := classifier.Load(cfg.Competition.Model, tracker.FeatureLen)
		if err != nil {
			return err
		}
		logger.Info("Loaded classifier", "model", model.Name(), "path", cfg.Competition.Model)
		scorer = model
	} else if cfg.NeedsScorer() {
		logger.Warn("No model configured, using baseline classifier")
		scorer = classifier.Baseline()
	}

	sink := training.Discard
	if cfg.Competition.TrainingOutput != "" {
		w, err := training.Create(cfg.Competition.TrainingOutput)
		if err != nil {
			return err
		}
		defer func() {
			if err := w.Close(); err != nil {
				logger.Error("Failed to close training output", "error", err)
				return
			}
			logger.Info("Wrote training rows", "rows", w.Written(), "path", cfg.Competition.TrainingOutput)
		}()
		sink = w
	}

	sim, err := simulator.New(cfg, simulator.Options{
		Scorer: scorer,
		Sink:   sink,
		Clock:  quartz.NewReal(),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting competition",
		"games", cfg.Competition.Games,
		"players", cfg.Competition.Players,
		"bots", len(cfg.Bots),
		"seed", cfg.Competition.Seed,
		"parallelism", cfg.Competition.Parallelism)

	summary, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Print(summary.Stats.Render(summary.Elapsed))
	return nil
}

func (c *PlayCmd) override(cfg *simulator.Config, cli *CLI) {
	comp := cfg.Competition
	if c.Games > 0 {
		comp.Games = c.Games
	}
	if c.Players > 0 {
		comp.Players = c.Players
	}
	if c.Seed != 0 {
		comp.Seed = c.Seed
	}
	if c.Parallelism > 0 {
		comp.Parallelism = c.Parallelism
	}
	if c.Model != "" {
		comp.Model = c.Model
	}
	if c.TrainingOutput != "" {
		comp.TrainingOutput = c.TrainingOutput
	}
	if cli.LogLevel != "" {
		comp.LogLevel = cli.LogLevel
	}
}
