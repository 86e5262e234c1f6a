package main

import (
	"fmt"

	"github.com/lox/resistancebots/internal/tracker"
)

type FeaturesCmd struct{}

func (c *FeaturesCmd) Run() error {
	fmt.Printf("Training rows: %d columns plus %q label\n", len(tracker.Columns), tracker.LabelColumn)
	fmt.Printf("Classifier input: %d features (first %d columns are not fed to the model)\n\n",
		tracker.FeatureLen, tracker.CosmeticColumns)

	for i, name := range tracker.Columns {
		role := "feature"
		if i < tracker.CosmeticColumns {
			role = "cosmetic"
		}
		fmt.Printf("%2d  %-24s %s\n", i, name, role)
	}
	return nil
}
