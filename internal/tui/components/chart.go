package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quarryworks/shelflife/internal/tui/theme"
)

// BarRow is one entry of a horizontal bar chart.
type BarRow struct {
	Label string
	Value float64
	Color lipgloss.Color
	// Suffix is rendered dimmed after the bar (e.g. the formatted value).
	Suffix string
}

// HorizontalBars renders a labeled horizontal bar chart. Bars scale on the
// largest finite value; the full bar width is reserved for +Inf so an
// infinite bar is always longer than any finite one, and NaN renders no
// bar. selected highlights one row's label (-1 for none).
func HorizontalBars(rows []BarRow, width, selected int) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	maxVal := 0.0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > labelW {
			labelW = w
		}
		if isFinite(r.Value) && r.Value > maxVal {
			maxVal = r.Value
		}
	}
	if labelW > width/3 {
		labelW = width / 3
	}

	barW := width - labelW - 12 // label + gap + suffix room
	if barW < 8 {
		barW = 8
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	suffixStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, r := range rows {
		label := truncate(r.Label, labelW)

		fill := 0
		switch {
		case math.IsNaN(r.Value):
		case math.IsInf(r.Value, 1):
			fill = barW
		case maxVal > 0 && r.Value > 0:
			fill = int(r.Value / maxVal * float64(barW-1))
			if fill == 0 {
				fill = 1 // visible sliver for small positive values
			}
		}
		if fill > barW {
			fill = barW
		}

		barStyle := lipgloss.NewStyle().Foreground(r.Color)

		ls := labelStyle
		if i == selected {
			ls = selectedStyle
		}

		fmt.Fprintf(&b, "%s %s %s\n",
			ls.Render(fmt.Sprintf("%-*s", labelW, label)),
			barStyle.Render(strings.Repeat("█", fill)),
			suffixStyle.Render(r.Suffix),
		)
	}

	return strings.TrimRight(b.String(), "\n")
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
