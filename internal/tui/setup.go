package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/quarryworks/shelflife/internal/config"
	"github.com/quarryworks/shelflife/internal/pipeline"
	"github.com/quarryworks/shelflife/internal/tui/theme"
)

// setupValues collects first-run choices before they land in config.
type setupValues struct {
	theme  string
	budget string
}

// newSetupForm builds the first-run wizard shown when no config file
// exists yet. itemCount personalizes the title with the loaded report.
func newSetupForm(itemCount int, vals *setupValues) *huh.Form {
	vals.theme = theme.FlexokiDark.Name
	vals.budget = strconv.FormatFloat(pipeline.BudgetDefault, 'f', 0, 64)

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("◈ shelflife").
				Description(fmt.Sprintf("First run · %d items loaded.\nPick a theme and a default annual budget.", itemCount)),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewInput().
				Title("Default annual budget").
				Description("Used when no --budget flag is given.").
				Validate(validateBudget).
				Value(&vals.budget),
		),
	)
}

func validateBudget(s string) error {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	if v < pipeline.BudgetMin {
		return fmt.Errorf("budget cannot be negative")
	}
	return nil
}

// saveSetupConfig persists the wizard's answers and applies them to the
// running session.
func (a *App) saveSetupConfig() {
	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = a.setupVals.theme
	cfg.General.SkipRows = a.opts.SkipRows

	if v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(a.setupVals.budget), ",", ""), 64); err == nil {
		cfg.General.DefaultBudget = pipeline.ClampBudget(v)
		a.budget = cfg.General.DefaultBudget
	}

	theme.SetActive(cfg.Appearance.Theme)

	// A failed save is not fatal; the wizard will simply run again next time.
	_ = config.Save(cfg)
}
