package pipeline

import (
	"sort"

	"github.com/quarryworks/shelflife/internal/model"
)

// RankTopN is the number of items the ranking view shows.
const RankTopN = 20

// TopByRevenue returns the top n items ordered by descending TotalRevenue.
// The sort is stable so revenue ties keep their original report order.
func TopByRevenue(items []model.ComputedItem, n int) []model.ComputedItem {
	ranked := make([]model.ComputedItem, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue > ranked[j].TotalRevenue
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
