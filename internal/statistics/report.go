package statistics

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	bestStyle = cellStyle.
			Foreground(lipgloss.Color("10"))
)

// Render formats the statistics as a terminal report.
func (s *Statistics) Render(elapsed time.Duration) string {
	var b strings.Builder

	mean, std := s.TurnsMeanStdDev()
	fmt.Fprintln(&b, titleStyle.Render("Resistance competition"))
	fmt.Fprintf(&b, "Games: %d  Resistance wins: %.1f%%  Forfeited missions: %d\n",
		s.Games, 100*s.ResistanceRate(), s.Forfeits)
	fmt.Fprintf(&b, "Game length: %.2f ± %.2f missions  Elapsed: %s\n\n",
		mean, std, elapsed.Round(time.Millisecond))

	rows := make([][]string, 0, len(s.bots))
	for _, bot := range s.Bots() {
		lo, hi := bot.ConfidenceInterval95()
		rows = append(rows, []string{
			bot.Bot,
			bot.Strategy,
			fmt.Sprintf("%d", bot.Games()),
			fmt.Sprintf("%.1f%%", 100*bot.WinRate()),
			fmt.Sprintf("%.1f-%.1f%%", 100*lo, 100*hi),
			fmt.Sprintf("%.1f%% (%d)", 100*bot.ResistanceRate(), bot.ResistanceGames),
			fmt.Sprintf("%.1f%% (%d)", 100*bot.SpyRate(), bot.SpyGames),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("BOT", "STRATEGY", "GAMES", "WIN", "95% CI", "RESISTANCE", "SPY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case row == 0:
				return bestStyle
			default:
				return cellStyle
			}
		})

	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}
