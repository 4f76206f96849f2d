package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarryworks/shelflife/internal/cli"
	"github.com/quarryworks/shelflife/internal/model"
	"github.com/quarryworks/shelflife/internal/pipeline"
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Full allocation table for a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault()
	budget := resolveBudget(cmd, cfg)

	result, err := loadReport(args[0], resolveSkipRows(cmd, cfg))
	if err != nil {
		return err
	}

	items := pipeline.Compute(result.Table.Items, result.Table.TotalRevenue, budget)

	fmt.Println()
	fmt.Println(cli.RenderTitle("INVENTORY ALLOCATION"))
	fmt.Println()
	fmt.Printf("  Total revenue: %s    Budget: %s    Items: %s\n\n",
		cli.FormatMoney(result.Table.TotalRevenue),
		cli.FormatMoney(budget),
		cli.FormatNumber(int64(len(items))),
	)

	fmt.Print(cli.RenderTable(allocationTable(items)))

	fmt.Println()
	fmt.Println("  Analysis complete.")
	return nil
}

// allocationTable builds the computed-columns table with per-row category
// coloring shared by the report and search commands.
func allocationTable(items []model.ComputedItem) cli.Table {
	t := cli.Table{
		Headers: []string{"Item", "TotalRevenue", "RevWeight", "AnnualBudgetAlloc",
			"MonthlyBudgetAlloc", "InventoryValue", "CoverMonths", "Category"},
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			it.Item,
			cli.FormatMoney(it.TotalRevenue),
			cli.FormatWeight(it.RevWeight),
			cli.FormatMoney(it.AnnualBudgetAlloc),
			cli.FormatMoney(it.MonthlyBudgetAlloc),
			cli.FormatMoney(it.CurrentInventoryValue),
			cli.FormatMonths(it.CoverMonths),
			it.Category.Short(),
		})
		t.RowStyles = append(t.RowStyles, cli.CategoryStyle(it.Category))
	}
	return t
}
