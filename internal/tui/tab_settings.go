package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarryworks/shelflife/internal/cli"
	"github.com/quarryworks/shelflife/internal/config"
	"github.com/quarryworks/shelflife/internal/pipeline"
	"github.com/quarryworks/shelflife/internal/source"
	"github.com/quarryworks/shelflife/internal/tui/components"
	"github.com/quarryworks/shelflife/internal/tui/theme"
)

const (
	settingBudget = iota
	settingSkipRows
	settingTheme
	settingReportDir
	settingCount
)

// settingsState holds the settings tab's cursor and edit state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	status  string
}

func newSettingsState() settingsState {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40
	return settingsState{input: ti}
}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingCount-1 {
			a.settings.cursor++
		}
		a.settings.status = ""
		return a, nil, true
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		a.settings.status = ""
		return a, nil, true
	case "enter":
		if a.settings.cursor == settingTheme {
			a.cycleTheme()
			return a, nil, true
		}
		a.settings.editing = true
		a.settings.status = ""
		a.settings.input.SetValue(a.settingValue(a.settings.cursor))
		a.settings.input.CursorEnd()
		a.settings.input.Focus()
		return a, textinput.Blink, true
	}
	return a, nil, false
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.settings.editing = false
		a.settings.input.Blur()
		return a, nil
	case "enter":
		a.settings.editing = false
		a.settings.input.Blur()
		return a.applySetting(strings.TrimSpace(a.settings.input.Value()))
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// applySetting parses and applies the edited value, then persists it to
// the config file.
func (a App) applySetting(raw string) (tea.Model, tea.Cmd) {
	cfg := a.loadConfigOrDefault()

	switch a.settings.cursor {
	case settingBudget:
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			a.settings.status = fmt.Sprintf("invalid budget %q", raw)
			return a, nil
		}
		a.budget = pipeline.ClampBudget(v)
		cfg.General.DefaultBudget = a.budget
		a.recompute()

	case settingSkipRows:
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			a.settings.status = fmt.Sprintf("invalid row count %q", raw)
			return a, nil
		}
		cfg.General.SkipRows = v
		a.opts.SkipRows = v
		if a.saveConfig(cfg) {
			// Re-read the current report with the new header offset.
			a.loading = true
			return a, tea.Batch(loadReportCmd(a.path, v, a.opts.NoCache), a.spinner.Tick)
		}
		return a, nil

	case settingReportDir:
		cfg.General.ReportDir = raw
		if raw != "" {
			a.picker.CurrentDirectory = raw
		}
	}

	a.saveConfig(cfg)
	return a, nil
}

func (a *App) cycleTheme() {
	cur := 0
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			cur = i
			break
		}
	}
	next := theme.All[(cur+1)%len(theme.All)]
	theme.SetActive(next.Name)

	cfg := a.loadConfigOrDefault()
	cfg.Appearance.Theme = next.Name
	a.saveConfig(cfg)
}

func (a App) loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func (a *App) saveConfig(cfg config.Config) bool {
	if err := config.Save(cfg); err != nil {
		a.settings.status = "save failed: " + err.Error()
		return false
	}
	a.settings.status = "saved to " + config.ConfigPath()
	return true
}

func (a App) settingValue(idx int) string {
	switch idx {
	case settingBudget:
		return strconv.FormatFloat(a.budget, 'f', -1, 64)
	case settingSkipRows:
		return strconv.Itoa(a.opts.SkipRows)
	case settingTheme:
		return theme.Active.Name
	case settingReportDir:
		return a.loadConfigOrDefault().General.ReportDir
	}
	return ""
}

func (a App) renderSettingsTab(width int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	statusStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	rows := []struct {
		label string
		value string
		hint  string
	}{
		{"Annual budget", cli.FormatMoney(a.budget), "applied immediately, saved as default"},
		{"Skip rows", strconv.Itoa(a.opts.SkipRows), fmt.Sprintf("report rows above the header (default %d)", source.DefaultSkipRows)},
		{"Theme", theme.Active.Name, "enter cycles"},
		{"Report directory", orDash(a.loadConfigOrDefault().General.ReportDir), "start dir for [o]pen"},
	}

	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		label := labelStyle.Render(fmt.Sprintf("%-18s", row.label))
		if i == a.settings.cursor {
			marker = selectedStyle.Render("› ")
			label = selectedStyle.Render(fmt.Sprintf("%-18s", row.label))
		}

		value := valueStyle.Render(row.value)
		if a.settings.editing && i == a.settings.cursor {
			value = a.settings.input.View()
		}

		fmt.Fprintf(&b, "%s%s %s  %s\n", marker, label, value, hintStyle.Render(row.hint))
	}

	b.WriteString("\n")
	if a.settings.status != "" {
		b.WriteString(statusStyle.Render(a.settings.status))
	} else {
		b.WriteString(hintStyle.Render("j/k move · enter edit · esc cancel"))
	}

	body := strings.TrimRight(b.String(), "\n")
	card := components.ContentCard("Settings", body, width)

	configLine := hintStyle.Render(" config: " + config.ConfigPath() +
		"  (env SHELFLIFE_BUDGET / SHELFLIFE_SKIP_ROWS override)")

	return card + "\n" + configLine
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
