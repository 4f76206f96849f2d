package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarryworks/shelflife/internal/cli"
	"github.com/quarryworks/shelflife/internal/model"
	"github.com/quarryworks/shelflife/internal/pipeline"
	"github.com/quarryworks/shelflife/internal/tui/components"
	"github.com/quarryworks/shelflife/internal/tui/theme"
)

// rankState holds the ranking tab's cursor.
type rankState struct {
	cursor int
}

func (a App) updateRankKeys(key string) (tea.Model, tea.Cmd, bool) {
	ranked := pipeline.TopByRevenue(a.items, pipeline.RankTopN)

	switch key {
	case "j", "down":
		if a.rank.cursor < len(ranked)-1 {
			a.rank.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.rank.cursor > 0 {
			a.rank.cursor--
		}
		return a, nil, true
	case "g":
		a.rank.cursor = 0
		return a, nil, true
	case "G":
		if len(ranked) > 0 {
			a.rank.cursor = len(ranked) - 1
		}
		return a, nil, true
	}
	return a, nil, false
}

// renderRankingTab shows the top items by revenue as a cover-months bar
// chart, plus a detail card for the selected bar and the band distribution
// across the whole report.
func (a App) renderRankingTab(width, height int) string {
	t := theme.Active
	ranked := pipeline.TopByRevenue(a.items, pipeline.RankTopN)

	if len(ranked) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("\n  No items to rank.")
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	rows := make([]components.BarRow, len(ranked))
	for i, it := range ranked {
		rows[i] = components.BarRow{
			Label:  it.Item,
			Value:  it.CoverMonths,
			Color:  t.Category(it.Category),
			Suffix: cli.FormatMonths(it.CoverMonths) + " mo",
		}
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Months of cover · top %d by revenue", len(ranked))))
	b.WriteString("\n\n")
	b.WriteString(components.HorizontalBars(rows, width-2, a.rank.cursor))
	b.WriteString("\n\n")
	b.WriteString(a.renderRankDetail(ranked, width))
	b.WriteString("\n")
	b.WriteString(a.renderBandDistribution(width))
	return b.String()
}

func (a App) renderRankDetail(ranked []model.ComputedItem, width int) string {
	if a.rank.cursor < 0 || a.rank.cursor >= len(ranked) {
		return ""
	}
	it := ranked[a.rank.cursor]
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	bandStyle := lipgloss.NewStyle().Foreground(t.Category(it.Category)).Bold(true)

	body := strings.Join([]string{
		keyStyle.Render("revenue ") + valStyle.Render(cli.FormatMoney(it.TotalRevenue)),
		keyStyle.Render("stock ") + valStyle.Render(cli.FormatMoney(it.CurrentInventoryValue)),
		keyStyle.Render("monthly ") + valStyle.Render(cli.FormatMoney(it.MonthlyBudgetAlloc)),
		keyStyle.Render("cover ") + valStyle.Render(cli.FormatMonths(it.CoverMonths)+" mo"),
		keyStyle.Render("band ") + bandStyle.Render(it.Category.String()),
	}, "   ")

	return components.ContentCard(it.Item, body, width)
}

// renderBandDistribution shows what share of all items lands in each
// coverage band.
func (a App) renderBandDistribution(width int) string {
	t := theme.Active

	counts := map[model.Category]int{}
	for _, it := range a.items {
		counts[it.Category]++
	}
	total := len(a.items)
	if total == 0 {
		return ""
	}

	barW := width / 3
	if barW < 10 {
		barW = 10
	}
	if barW > 40 {
		barW = 40
	}

	var lines []string
	for _, c := range []model.Category{
		model.CategoryDanger, model.CategoryLow, model.CategoryNormal, model.CategoryExcess,
	} {
		n := counts[c]
		lines = append(lines, components.DistributionBar(
			c.Short(), float64(n)/float64(total), n, t.Category(c), 7, barW))
	}

	return components.ContentCard("All items by band", strings.Join(lines, "\n"), width)
}
