package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/quarryworks/shelflife/internal/cli"
	"github.com/quarryworks/shelflife/internal/pipeline"
)

var flagTopN int

var rankCmd = &cobra.Command{
	Use:   "rank <file>",
	Short: "Top items by revenue with their cover months",
	Args:  cobra.ExactArgs(1),
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().IntVarP(&flagTopN, "top", "t", pipeline.RankTopN, "Number of items to rank")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault()
	budget := resolveBudget(cmd, cfg)

	result, err := loadReport(args[0], resolveSkipRows(cmd, cfg))
	if err != nil {
		return err
	}

	items := pipeline.Compute(result.Table.Items, result.Table.TotalRevenue, budget)
	ranked := pipeline.TopByRevenue(items, flagTopN)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP %d ITEMS BY REVENUE", len(ranked))))
	fmt.Println()

	// Bar length scales on the largest finite cover months in the ranking.
	labelW := 0
	maxCover := 0.0
	for _, it := range ranked {
		if len(it.Item) > labelW {
			labelW = len(it.Item)
		}
		if !math.IsInf(it.CoverMonths, 0) && !math.IsNaN(it.CoverMonths) && it.CoverMonths > maxCover {
			maxCover = it.CoverMonths
		}
	}
	if labelW > 30 {
		labelW = 30
	}

	for _, it := range ranked {
		label := it.Item
		if len(label) > labelW {
			label = label[:labelW-1] + "…"
		}
		detail := fmt.Sprintf("%s mo  rev %s  stock %s  %s",
			cli.FormatMonths(it.CoverMonths),
			cli.FormatMoney(it.TotalRevenue),
			cli.FormatMoney(it.CurrentInventoryValue),
			it.Category.Short(),
		)
		fmt.Println(cli.RenderHorizontalBar(
			fmt.Sprintf("%-*s", labelW, label),
			it.CoverMonths, maxCover, 40,
			cli.CategoryColor(it.Category),
			detail,
		))
	}

	fmt.Println()
	return nil
}
