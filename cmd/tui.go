package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/quarryworks/shelflife/internal/tui"
	"github.com/quarryworks/shelflife/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [report file]",
	Short: "Launch the interactive dashboard",
	Long: "Open the interactive table, search, and ranking views. With no file\n" +
		"argument a file picker is shown.",
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so category background styling always
	// produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	app := tui.NewApp(tui.Options{
		Path:     path,
		Budget:   resolveBudget(cmd, cfg),
		SkipRows: resolveSkipRows(cmd, cfg),
		NoCache:  flagNoCache,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
