package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarryworks/shelflife/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default budget: %.0f\n", cfg.General.DefaultBudget)
	fmt.Printf("    Skip rows:      %d\n", cfg.General.SkipRows)
	if cfg.General.ReportDir != "" {
		fmt.Printf("    Report dir:     %s\n", cfg.General.ReportDir)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Settings can also be changed in the TUI, or overridden with")
	fmt.Println("  SHELFLIFE_BUDGET, SHELFLIFE_SKIP_ROWS, and SHELFLIFE_THEME.")
	return nil
}
