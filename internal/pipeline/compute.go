// Package pipeline orchestrates report loading, caching, and the allocation
// computation.
package pipeline

import (
	"github.com/quarryworks/shelflife/internal/model"
)

// Budget parameter bounds. The budget is user-adjustable in BudgetStep
// increments and never goes below BudgetMin.
const (
	BudgetDefault = 100000.0
	BudgetMin     = 0.0
	BudgetStep    = 1000.0
)

// Compute derives the allocation columns for every item row.
//
// It is a pure function of (items, totalRev, budget): callers re-run it in
// full whenever the report or the budget changes. Division follows IEEE
// float semantics: a zero monthly allocation gives +Inf cover months (or
// NaN for 0/0), which Categorize bands as Excess, while a zero totalRev
// gives +Inf weights and therefore zero cover for finite stock, which
// bands as Danger. No rounding happens here; formatting is display-side
// only.
func Compute(items []model.CleanRow, totalRev, budget float64) []model.ComputedItem {
	computed := make([]model.ComputedItem, len(items))
	for i, row := range items {
		c := model.ComputedItem{CleanRow: row}
		c.RevWeight = row.TotalRevenue / totalRev
		c.AnnualBudgetAlloc = c.RevWeight * budget
		c.MonthlyBudgetAlloc = c.AnnualBudgetAlloc / 12
		c.CurrentInventoryValue = row.CurrentOnHandValue
		c.CoverMonths = c.CurrentInventoryValue / c.MonthlyBudgetAlloc
		c.Category = Categorize(c.CoverMonths)
		computed[i] = c
	}
	return computed
}

// Categorize bands cover months into the four coverage categories:
// under 1 is Danger, under 3 is Low, up to and including 6 is Normal,
// everything above is Excess. NaN and +Inf fail every comparison and
// land in Excess.
func Categorize(coverMonths float64) model.Category {
	switch {
	case coverMonths < 1:
		return model.CategoryDanger
	case coverMonths < 3:
		return model.CategoryLow
	case coverMonths <= 6:
		return model.CategoryNormal
	default:
		return model.CategoryExcess
	}
}

// ClampBudget snaps a requested budget value to the allowed range.
func ClampBudget(budget float64) float64 {
	if budget < BudgetMin {
		return BudgetMin
	}
	return budget
}
