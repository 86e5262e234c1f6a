package main

import (
	"fmt"

	"github.com/lox/resistancebots/internal/classifier"
	"github.com/lox/resistancebots/internal/tracker"
)

type ModelCmd struct {
	Verify VerifyCmd `cmd:"" help:"Check model weights against the feature schema"`
}

type VerifyCmd struct {
	Path string `arg:"" optional:"" type:"existingfile" help:"Model weights (JSON); omit to check the baseline model"`
}

func (c *VerifyCmd) Run(cli *CLI) error {
	logger := newLogger(cli.LogLevel)

	model := classifier.Baseline()
	if c.Path != "" {
		loaded, err := classifier.Load(c.Path, tracker.FeatureLen)
		if err != nil {
			return err
		}
		model = loaded
	}
	if err := model.Verify(tracker.FeatureLen); err != nil {
		return err
	}

	// A neutral player: no missions, no votes.
	probs, err := model.SpyProbabilities([][]float64{make([]float64, tracker.FeatureLen)})
	if err != nil {
		return err
	}

	logger.Debug("Model verified", "model", model.Name())
	fmt.Printf("%s: ok (%d inputs, %d classes, neutral spy probability %.3f)\n",
		model.Name(), model.Inputs(), classifier.Classes, probs[0])
	return nil
}
