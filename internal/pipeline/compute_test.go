package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryworks/shelflife/internal/model"
)

func TestComputeAllocations(t *testing.T) {
	items := []model.CleanRow{
		{Item: "Widget A", TotalRevenue: 600, CurrentOnHandValue: 3000},
		{Item: "Widget B", TotalRevenue: 400, CurrentOnHandValue: 500},
	}

	got := Compute(items, 1000, 120000)
	require.Len(t, got, 2)

	a := got[0]
	assert.InDelta(t, 0.6, a.RevWeight, 1e-12)
	assert.InDelta(t, 72000, a.AnnualBudgetAlloc, 1e-9)
	assert.InDelta(t, 6000, a.MonthlyBudgetAlloc, 1e-9)
	assert.Equal(t, 3000.0, a.CurrentInventoryValue)
	assert.InDelta(t, 0.5, a.CoverMonths, 1e-12)
	assert.Equal(t, model.CategoryDanger, a.Category)

	b := got[1]
	assert.InDelta(t, 0.4, b.RevWeight, 1e-12)
	assert.InDelta(t, 48000, b.AnnualBudgetAlloc, 1e-9)
	assert.InDelta(t, 4000, b.MonthlyBudgetAlloc, 1e-9)
	assert.InDelta(t, 0.125, b.CoverMonths, 1e-12)
	assert.Equal(t, model.CategoryDanger, b.Category)
}

func TestComputeWeightsSumToOne(t *testing.T) {
	items := []model.CleanRow{
		{Item: "A", TotalRevenue: 123.45},
		{Item: "B", TotalRevenue: 678.9},
		{Item: "C", TotalRevenue: 0.65},
	}
	total := 123.45 + 678.9 + 0.65

	got := Compute(items, total, 100000)

	sum := 0.0
	for _, it := range got {
		sum += it.RevWeight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestComputeZeroRevenueItem(t *testing.T) {
	// A zero-revenue item gets no allocation; stock on hand divided by a
	// zero monthly allocation is +Inf, which bands as Excess.
	items := []model.CleanRow{
		{Item: "Dead stock", TotalRevenue: 0, CurrentOnHandValue: 800},
	}

	got := Compute(items, 1000, 120000)
	require.Len(t, got, 1)

	assert.Equal(t, 0.0, got[0].RevWeight)
	assert.Equal(t, 0.0, got[0].MonthlyBudgetAlloc)
	assert.True(t, math.IsInf(got[0].CoverMonths, 1))
	assert.Equal(t, model.CategoryExcess, got[0].Category)
}

func TestComputeZeroRevenueZeroStock(t *testing.T) {
	// 0/0 is NaN; it still bands deterministically as Excess.
	items := []model.CleanRow{
		{Item: "Ghost", TotalRevenue: 0, CurrentOnHandValue: 0},
	}

	got := Compute(items, 1000, 120000)
	require.True(t, math.IsNaN(got[0].CoverMonths))
	assert.Equal(t, model.CategoryExcess, got[0].Category)
}

func TestComputeZeroTotalRevenue(t *testing.T) {
	// totalRev=0 makes the weight and the allocations +Inf. Finite stock
	// divided by an infinite monthly allocation is 0 months of cover, so
	// the item bands as Danger, not Excess.
	items := []model.CleanRow{
		{Item: "A", TotalRevenue: 100, CurrentOnHandValue: 50},
	}

	got := Compute(items, 0, 120000)
	assert.True(t, math.IsInf(got[0].RevWeight, 1))
	assert.True(t, math.IsInf(got[0].MonthlyBudgetAlloc, 1))
	assert.Equal(t, 0.0, got[0].CoverMonths)
	assert.Equal(t, model.CategoryDanger, got[0].Category)
}

func TestComputeZeroBudget(t *testing.T) {
	items := []model.CleanRow{
		{Item: "A", TotalRevenue: 100, CurrentOnHandValue: 50},
	}

	got := Compute(items, 1000, 0)
	assert.Equal(t, 0.0, got[0].AnnualBudgetAlloc)
	assert.True(t, math.IsInf(got[0].CoverMonths, 1))
	assert.Equal(t, model.CategoryExcess, got[0].Category)
}

func TestCategorizeBoundaries(t *testing.T) {
	tests := []struct {
		months float64
		want   model.Category
	}{
		{0, model.CategoryDanger},
		{0.999, model.CategoryDanger},
		{1, model.CategoryLow},
		{2.999, model.CategoryLow},
		{3, model.CategoryNormal},
		{6, model.CategoryNormal},
		{6.001, model.CategoryExcess},
		{100, model.CategoryExcess},
		{math.Inf(1), model.CategoryExcess},
		{math.NaN(), model.CategoryExcess},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.months), "months=%v", tt.months)
	}
}

func TestClampBudget(t *testing.T) {
	assert.Equal(t, 0.0, ClampBudget(-5000))
	assert.Equal(t, 0.0, ClampBudget(0))
	assert.Equal(t, 250000.0, ClampBudget(250000))
}

func TestComputeEmptyItems(t *testing.T) {
	got := Compute(nil, 1000, 100000)
	assert.Empty(t, got)
}
