package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/resistancebots/internal/bot"
)

type BotsCmd struct{}

func (c *BotsCmd) Run() error {
	rows := make([][]string, 0, len(bot.Strategies()))
	for _, name := range bot.Strategies() {
		needs := ""
		if bot.NeedsScorer(name) {
			needs = "classifier"
		}
		rows = append(rows, []string{name, bot.Describe(name), needs})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STRATEGY", "DESCRIPTION", "REQUIRES").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Println(t)
	return nil
}
