package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarryworks/shelflife/internal/tui/theme"
)

// DistributionBar renders a labeled share bar for one coverage band:
// "Danger  ████░░░░  23%  (5 items)".
func DistributionBar(label string, pct float64, count int, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(color)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(pct) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100)) + " " +
		countStyle.Render(fmt.Sprintf("(%d items)", count))
}
