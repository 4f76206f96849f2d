// Package tui provides the interactive Bubble Tea dashboard for shelflife.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarryworks/shelflife/internal/cli"
	"github.com/quarryworks/shelflife/internal/config"
	"github.com/quarryworks/shelflife/internal/model"
	"github.com/quarryworks/shelflife/internal/pipeline"
	"github.com/quarryworks/shelflife/internal/source"
	"github.com/quarryworks/shelflife/internal/store"
	"github.com/quarryworks/shelflife/internal/tui/components"
	"github.com/quarryworks/shelflife/internal/tui/theme"
)

// Options configures the TUI at launch.
type Options struct {
	Path     string // report file; empty opens the picker
	Budget   float64
	SkipRows int
	NoCache  bool
}

// ReportLoadedMsg is sent when the report load finishes.
type ReportLoadedMsg struct {
	Result *pipeline.LoadResult
	Err    error
}

// App is the root Bubble Tea model.
type App struct {
	opts Options

	// Data
	path    string
	table   model.PreparedTable
	items   []model.ComputedItem
	budget  float64
	loaded  bool
	loading bool
	loadErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	alloc    allocationState
	rank     rankState
	settings settingsState

	// File picker ("file upload" control)
	picking bool
	picker  filepicker.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

// Tab indexes, aligned with components.Tabs.
const (
	tabAllocation = iota
	tabRanking
	tabSettings
)

const (
	minTerminalWidth = 72
	maxContentWidth  = 180
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv", ".xlsx"}
	if dir := pickerStartDir(); dir != "" {
		fp.CurrentDirectory = dir
	}

	return App{
		opts:      opts,
		path:      opts.Path,
		budget:    pipeline.ClampBudget(opts.Budget),
		loading:   opts.Path != "",
		picking:   opts.Path == "",
		picker:    fp,
		alloc:     newAllocationState(),
		settings:  newSettingsState(),
		needSetup: !config.Exists(),
		spinner:   sp,
	}
}

func pickerStartDir() string {
	cfg, err := config.Load()
	if err == nil && cfg.General.ReportDir != "" {
		return cfg.General.ReportDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick}
	if a.picking {
		cmds = append(cmds, a.picker.Init())
	} else {
		cmds = append(cmds, loadReportCmd(a.path, a.opts.SkipRows, a.opts.NoCache))
	}
	return tea.Batch(cmds...)
}

// recompute re-runs the allocation pipeline in full. The computation is a
// pure function of the cleaned table and the budget, so every budget edit
// or file change lands here.
func (a *App) recompute() {
	a.items = pipeline.Compute(a.table.Items, a.table.TotalRevenue, a.budget)

	visible := a.searchFilteredItems()
	if a.alloc.cursor >= len(visible) {
		a.alloc.cursor = len(visible) - 1
	}
	if a.alloc.cursor < 0 {
		a.alloc.cursor = 0
	}

	ranked := pipeline.TopByRevenue(a.items, pipeline.RankTopN)
	if a.rank.cursor >= len(ranked) {
		a.rank.cursor = len(ranked) - 1
	}
	if a.rank.cursor < 0 {
		a.rank.cursor = 0
	}
}

// adjustBudget steps the budget and recomputes; min is clamped, no upper
// bound.
func (a *App) adjustBudget(delta float64) {
	a.budget = pipeline.ClampBudget(a.budget + delta)
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.Height = msg.Height - 6
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)

	case ReportLoadedMsg:
		a.loading = false
		if msg.Err != nil {
			// A missing summary row (or any load failure) keeps the
			// session alive: the picker can try another file.
			a.loadErr = msg.Err
			return a, nil
		}
		a.loadErr = nil
		a.table = msg.Result.Table
		a.path = msg.Result.Path
		a.loaded = true
		a.recompute()

		if a.needSetup {
			a.setupForm = newSetupForm(len(a.table.Items), &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.picking {
		return a.updatePicker(msg)
	}
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Component messages (cursor blink ticks) reach the focused input.
	if a.alloc.searching {
		var cmd tea.Cmd
		a.alloc.input, cmd = a.alloc.input.Update(msg)
		return a, cmd
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.picking {
		return a.updatePicker(msg)
	}

	if a.loading {
		return a, nil
	}

	// Load failed and nothing shown yet: allow picking a new file
	if a.loadErr != nil && !a.loaded {
		switch key {
		case "o":
			a.loadErr = nil
			a.picking = true
			return a, a.picker.Init()
		case "q":
			return a, tea.Quit
		}
		return a, nil
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Settings editing intercepts all keys (text input)
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	// Allocation search mode intercepts all keys when active
	if a.activeTab == tabAllocation && a.alloc.searching {
		return a.updateAllocationSearch(msg)
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Budget stepping works on every tab
	switch key {
	case "+", "=":
		a.adjustBudget(pipeline.BudgetStep)
		return a, nil
	case "-", "_":
		a.adjustBudget(-pipeline.BudgetStep)
		return a, nil
	}

	// Re-open the picker for another report
	if key == "o" {
		a.picking = true
		return a, a.picker.Init()
	}

	if a.activeTab == tabAllocation {
		if m, cmd, handled := a.updateAllocationKeys(key); handled {
			return m, cmd
		}
	}
	if a.activeTab == tabRanking {
		if m, cmd, handled := a.updateRankKeys(key); handled {
			return m, cmd
		}
	}
	if a.activeTab == tabSettings {
		if m, cmd, handled := a.updateSettingsKeys(key); handled {
			return m, cmd
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		a.activeTab = tabAllocation
	case "r":
		a.activeTab = tabRanking
	case "x":
		a.activeTab = tabSettings
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.loaded || a.showHelp || a.picking || (a.needSetup && a.setupForm != nil) {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabAllocation && !a.alloc.searching && a.alloc.cursor > 0 {
			a.alloc.cursor--
		}
		return a, nil

	case tea.MouseButtonWheelDown:
		if a.activeTab == tabAllocation && !a.alloc.searching {
			if a.alloc.cursor < len(a.searchFilteredItems())-1 {
				a.alloc.cursor++
			}
		}
		return a, nil

	case tea.MouseButtonLeft:
		// Tab bar occupies the first line
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

func (a App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			// Picker with nothing loaded means quit; otherwise back out
			if !a.loaded {
				return a, tea.Quit
			}
			a.picking = false
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)

	if ok, path := a.picker.DidSelectFile(msg); ok {
		a.picking = false
		a.loading = true
		a.loadErr = nil
		return a, tea.Batch(loadReportCmd(path, a.opts.SkipRows, a.opts.NoCache), a.spinner.Tick)
	}

	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.picking {
		return a.viewPicker()
	}

	if a.loading {
		return a.viewLoading()
	}

	if a.loadErr != nil && !a.loaded {
		return a.viewLoadError()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  shelflife needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewPicker() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("◈ shelflife"))
	b.WriteString(hintStyle.Render(" · Select a report file (.csv or .xlsx)"))
	b.WriteString("\n\n")
	b.WriteString(a.picker.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("  Enter to open · q to cancel"))

	h := a.height
	if h < 5 {
		h = 5
	}
	return padHeight(truncateHeight(b.String(), h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ shelflife"))
	b.WriteString(subtitleStyle.Render(" · Inventory Allocation"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Reading report..."))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoadError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	title := "Could not analyze report"
	detail := a.loadErr.Error()
	if errors.Is(a.loadErr, source.ErrNoSummaryRow) {
		detail = "No summary row found: one row's Item must start with \"Total\".\n" +
			"Its TotalRevenue is the denominator for the revenue weights."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render(detail))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[o]pen another file   [q]uit"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"a r x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate rows"},
		{"g G", "First / Last row"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"/", "Search items"},
		{"+ -", "Adjust budget (±1,000)"},
		{"o", "Open another report"},
		{"Enter", "Edit / Confirm"},
		{"Esc", "Back / Clear search"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	statusBar := components.RenderStatusBar(w,
		shortPath(a.path),
		cli.FormatMoney(a.budget),
	)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabAllocation:
		content = a.renderAllocationTab(cw, contentH)
	case tabRanking:
		content = a.renderRankingTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

// loadReportCmd runs the load pipeline in the background.
func loadReportCmd(path string, skip int, noCache bool) tea.Cmd {
	return func() tea.Msg {
		if !noCache {
			cache, err := store.Open(pipeline.CachePath())
			if err == nil {
				result, loadErr := pipeline.LoadWithCache(path, skip, cache)
				_ = cache.Close()
				return ReportLoadedMsg{Result: result, Err: loadErr}
			}
		}

		result, err := pipeline.Load(path, skip)
		return ReportLoadedMsg{Result: result, Err: err}
	}
}

func shortPath(path string) string {
	if len(path) <= 40 {
		return path
	}
	return "…" + path[len(path)-39:]
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
