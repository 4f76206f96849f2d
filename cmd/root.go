// Package cmd implements the shelflife CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarryworks/shelflife/internal/config"
	"github.com/quarryworks/shelflife/internal/pipeline"
	"github.com/quarryworks/shelflife/internal/source"
	"github.com/quarryworks/shelflife/internal/store"
)

var (
	flagBudget   float64
	flagSkipRows int
	flagNoCache  bool
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "shelflife [report file]",
	Short: "Inventory cover and budget allocation from revenue reports",
	Long: "Ingest a CSV or XLSX inventory/revenue report, allocate an annual budget\n" +
		"across items by revenue share, and see how many months of cover each\n" +
		"item's on-hand stock gives at that pace.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runReport(cmd, args)
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64VarP(&flagBudget, "budget", "b", pipeline.BudgetDefault, "Annual total budget to allocate")
	rootCmd.PersistentFlags().IntVar(&flagSkipRows, "skip-rows", source.DefaultSkipRows, "Descriptive lines before the header row")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the snapshot cache, reparse the report")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// resolveBudget returns the flag value when set, otherwise the configured
// default, clamped to the allowed range.
func resolveBudget(cmd *cobra.Command, cfg config.Config) float64 {
	budget := cfg.General.DefaultBudget
	if cmd.Flags().Changed("budget") {
		budget = flagBudget
	}
	return pipeline.ClampBudget(budget)
}

// resolveSkipRows returns the flag value when set, otherwise the configured
// default.
func resolveSkipRows(cmd *cobra.Command, cfg config.Config) int {
	if cmd.Flags().Changed("skip-rows") {
		return flagSkipRows
	}
	return cfg.General.SkipRows
}

// loadConfigOrDefault loads config, returning defaults on error so one-shot
// commands still run with a corrupted config file.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// loadReport is the shared report loading path used by all commands.
// Uses the SQLite snapshot cache when available for fast repeat runs.
func loadReport(path string, skip int) (*pipeline.LoadResult, error) {
	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			// Cache open failed; fall back to uncached
			if !flagQuiet {
				fmt.Fprintln(os.Stderr, "  Cache unavailable, parsing report")
			}
		} else {
			defer func() { _ = cache.Close() }()
			result, err := pipeline.LoadWithCache(path, skip, cache)
			if err != nil {
				return nil, err
			}
			if !flagQuiet && result.FromCache {
				fmt.Fprintln(os.Stderr, "  Loaded report from snapshot cache")
			}
			return result, nil
		}
	}

	return pipeline.Load(path, skip)
}
