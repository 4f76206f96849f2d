package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarryworks/shelflife/internal/cli"
	"github.com/quarryworks/shelflife/internal/pipeline"
)

var searchCmd = &cobra.Command{
	Use:   "search <file> <query>",
	Short: "Filter the allocation table by item name",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	path, query := args[0], args[1]

	cfg := loadConfigOrDefault()
	budget := resolveBudget(cmd, cfg)

	result, err := loadReport(path, resolveSkipRows(cmd, cfg))
	if err != nil {
		return err
	}

	items := pipeline.Compute(result.Table.Items, result.Table.TotalRevenue, budget)
	matched := pipeline.FilterByItem(items, query)

	if len(matched) == 0 {
		// Informational, not an error
		fmt.Printf("\n  No items matching %q.\n", query)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ITEMS MATCHING %q", query)))
	fmt.Println()
	fmt.Print(cli.RenderTable(allocationTable(matched)))
	fmt.Println()
	return nil
}
