package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarryworks/shelflife/internal/cli"
	"github.com/quarryworks/shelflife/internal/model"
	"github.com/quarryworks/shelflife/internal/pipeline"
	"github.com/quarryworks/shelflife/internal/tui/components"
	"github.com/quarryworks/shelflife/internal/tui/theme"
)

// allocationState holds the allocation tab's cursor and search state.
type allocationState struct {
	cursor    int
	offset    int
	searching bool
	query     string
	input     textinput.Model
}

func newAllocationState() allocationState {
	ti := textinput.New()
	ti.Placeholder = "item name..."
	ti.CharLimit = 64
	ti.Width = 32
	return allocationState{input: ti}
}

// searchFilteredItems applies the active item search to the computed rows.
func (a App) searchFilteredItems() []model.ComputedItem {
	return pipeline.FilterByItem(a.items, a.alloc.query)
}

// updateAllocationSearch handles keys while the search input is focused.
// Filtering is live: the table narrows as the query is typed.
func (a App) updateAllocationSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "enter":
		a.alloc.searching = false
		a.alloc.query = a.alloc.input.Value()
		a.alloc.input.Blur()
		return a, nil
	case "esc":
		a.alloc.searching = false
		a.alloc.query = ""
		a.alloc.input.SetValue("")
		a.alloc.input.Blur()
		a.alloc.cursor = 0
		a.alloc.offset = 0
		return a, nil
	}

	var cmd tea.Cmd
	a.alloc.input, cmd = a.alloc.input.Update(msg)
	a.alloc.query = a.alloc.input.Value()
	a.alloc.cursor = 0
	a.alloc.offset = 0
	return a, cmd
}

// updateAllocationKeys handles allocation-tab keys outside search mode.
// Returns handled=false for keys that fall through to global bindings.
func (a App) updateAllocationKeys(key string) (tea.Model, tea.Cmd, bool) {
	visible := a.searchFilteredItems()

	switch key {
	case "/":
		a.alloc.searching = true
		a.alloc.input.Focus()
		return a, textinput.Blink, true
	case "esc":
		if a.alloc.query != "" {
			a.alloc.query = ""
			a.alloc.input.SetValue("")
			a.alloc.cursor = 0
			a.alloc.offset = 0
			return a, nil, true
		}
		return a, nil, false
	case "j", "down":
		if a.alloc.cursor < len(visible)-1 {
			a.alloc.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.alloc.cursor > 0 {
			a.alloc.cursor--
		}
		return a, nil, true
	case "g":
		a.alloc.cursor = 0
		return a, nil, true
	case "G":
		if len(visible) > 0 {
			a.alloc.cursor = len(visible) - 1
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a *App) renderAllocationTab(width, height int) string {
	t := theme.Active
	visible := a.searchFilteredItems()

	var b strings.Builder
	b.WriteString(a.renderAllocationCards(width))
	b.WriteString("\n")
	b.WriteString(a.renderSearchLine(len(visible)))
	b.WriteString("\n")

	used := lipgloss.Height(b.String())
	detailH := 4 // detail card for the selected row
	tableH := height - used - detailH
	if tableH < 4 {
		tableH = 4
	}

	if len(visible) == 0 {
		info := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("  No items matching %q.", a.alloc.query))
		b.WriteString("\n")
		b.WriteString(info)
		return b.String()
	}

	b.WriteString(a.renderAllocationTable(visible, width, tableH))
	b.WriteString("\n")
	b.WriteString(a.renderSelectedDetail(visible, width))
	return b.String()
}

func (a App) renderAllocationCards(width int) string {
	counts := map[model.Category]int{}
	for _, it := range a.items {
		counts[it.Category]++
	}
	bands := fmt.Sprintf("%d danger · %d low · %d normal · %d excess",
		counts[model.CategoryDanger], counts[model.CategoryLow],
		counts[model.CategoryNormal], counts[model.CategoryExcess])

	return components.MetricCardRow([]components.Metric{
		{
			Label:  "Total Revenue",
			Value:  cli.FormatMoney(a.table.TotalRevenue),
			Detail: a.table.SummaryItem,
		},
		{
			Label:  "Annual Budget",
			Value:  cli.FormatMoney(a.budget),
			Detail: "monthly " + cli.FormatMoney(a.budget/12),
		},
		{
			Label:  "Items",
			Value:  cli.FormatNumber(int64(len(a.items))),
			Detail: bands,
		},
	}, width)
}

func (a App) renderSearchLine(matches int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if a.alloc.searching {
		return " " + labelStyle.Render("search: ") + a.alloc.input.View()
	}
	if a.alloc.query != "" {
		countStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		return " " + labelStyle.Render("search: ") +
			lipgloss.NewStyle().Foreground(t.TextPrimary).Render(a.alloc.query) +
			countStyle.Render(fmt.Sprintf("  (%d matches, esc clears)", matches))
	}
	return " " + labelStyle.Render("[/] to search items")
}

// allocation table column widths; Item absorbs the leftover space.
var allocCols = []struct {
	name  string
	width int
}{
	{"Revenue", 13},
	{"Weight", 11},
	{"Annual", 12},
	{"Monthly", 11},
	{"Stock", 12},
	{"Cover", 7},
	{"Band", 7},
}

func (a *App) renderAllocationTable(visible []model.ComputedItem, width, height int) string {
	t := theme.Active

	fixed := 0
	for _, c := range allocCols {
		fixed += c.width + 2
	}
	itemW := width - fixed - 2
	if itemW < 12 {
		itemW = 12
	}
	if itemW > 40 {
		itemW = 40
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", itemW, "Item")))
	for _, c := range allocCols {
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %*s", c.width, c.name)))
	}
	b.WriteString("\n")

	rows := height - 1 // minus header line
	if rows < 1 {
		rows = 1
	}

	// Keep cursor in the window
	if a.alloc.cursor < a.alloc.offset {
		a.alloc.offset = a.alloc.cursor
	}
	if a.alloc.cursor >= a.alloc.offset+rows {
		a.alloc.offset = a.alloc.cursor - rows + 1
	}
	if a.alloc.offset < 0 {
		a.alloc.offset = 0
	}

	end := a.alloc.offset + rows
	if end > len(visible) {
		end = len(visible)
	}

	for i := a.alloc.offset; i < end; i++ {
		it := visible[i]
		band := theme.Active.Category(it.Category)

		cells := []string{
			fmt.Sprintf("%-*s", itemW, truncate(it.Item, itemW)),
			fmt.Sprintf("  %*s", allocCols[0].width, cli.FormatMoney(it.TotalRevenue)),
			fmt.Sprintf("  %*s", allocCols[1].width, cli.FormatWeight(it.RevWeight)),
			fmt.Sprintf("  %*s", allocCols[2].width, cli.FormatMoney(it.AnnualBudgetAlloc)),
			fmt.Sprintf("  %*s", allocCols[3].width, cli.FormatMoney(it.MonthlyBudgetAlloc)),
			fmt.Sprintf("  %*s", allocCols[4].width, cli.FormatMoney(it.CurrentInventoryValue)),
			fmt.Sprintf("  %*s", allocCols[5].width, cli.FormatMonths(it.CoverMonths)),
			fmt.Sprintf("  %*s", allocCols[6].width, it.Category.Short()),
		}

		rowStyle := lipgloss.NewStyle().Foreground(band)
		if i == a.alloc.cursor {
			rowStyle = rowStyle.Background(t.SurfaceHover).Bold(true)
		}

		b.WriteString(" ")
		b.WriteString(rowStyle.Render(strings.Join(cells, "")))
		b.WriteString("\n")
	}

	if end < len(visible) {
		more := lipgloss.NewStyle().Foreground(t.TextDim).
			Render(fmt.Sprintf(" … %d more", len(visible)-end))
		b.WriteString(more)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderSelectedDetail shows the cursor row's full values, including any
// extra report columns that do not fit in the table.
func (a App) renderSelectedDetail(visible []model.ComputedItem, width int) string {
	if a.alloc.cursor < 0 || a.alloc.cursor >= len(visible) {
		return ""
	}
	it := visible[a.alloc.cursor]
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	bandStyle := lipgloss.NewStyle().Foreground(t.Category(it.Category)).Bold(true)

	pairs := []string{
		keyStyle.Render("cover ") + valStyle.Render(cli.FormatMonths(it.CoverMonths)+" mo"),
		keyStyle.Render("band ") + bandStyle.Render(it.Category.String()),
	}
	for _, col := range it.ExtraOrder {
		pairs = append(pairs,
			keyStyle.Render(strings.ToLower(col)+" ")+valStyle.Render(cli.FormatMoney(it.Extra[col])))
	}

	return components.ContentCard(it.Item, strings.Join(pairs, "   "), width)
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
