package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryworks/shelflife/internal/model"
)

func rankItems(revenues ...float64) []model.ComputedItem {
	items := make([]model.ComputedItem, len(revenues))
	for i, r := range revenues {
		items[i].Item = fmt.Sprintf("item-%d", i)
		items[i].TotalRevenue = r
	}
	return items
}

func TestTopByRevenueSortsDescending(t *testing.T) {
	items := rankItems(100, 900, 500)

	got := TopByRevenue(items, 20)
	require.Len(t, got, 3)
	assert.Equal(t, 900.0, got[0].TotalRevenue)
	assert.Equal(t, 500.0, got[1].TotalRevenue)
	assert.Equal(t, 100.0, got[2].TotalRevenue)
}

func TestTopByRevenueTruncates(t *testing.T) {
	items := rankItems(make([]float64, 25)...)
	for i := range items {
		items[i].TotalRevenue = float64(i)
	}

	got := TopByRevenue(items, RankTopN)
	require.Len(t, got, 20)
	assert.Equal(t, 24.0, got[0].TotalRevenue)
	assert.Equal(t, 5.0, got[19].TotalRevenue)
}

func TestTopByRevenueStableTies(t *testing.T) {
	items := []model.ComputedItem{}
	for _, name := range []string{"first", "second", "third"} {
		items = append(items, model.ComputedItem{
			CleanRow: model.CleanRow{Item: name, TotalRevenue: 100},
		})
	}

	got := TopByRevenue(items, 3)
	assert.Equal(t, "first", got[0].Item)
	assert.Equal(t, "second", got[1].Item)
	assert.Equal(t, "third", got[2].Item)
}

func TestTopByRevenueDoesNotMutateInput(t *testing.T) {
	items := rankItems(1, 3, 2)
	_ = TopByRevenue(items, 3)
	assert.Equal(t, 1.0, items[0].TotalRevenue)
	assert.Equal(t, 3.0, items[1].TotalRevenue)
	assert.Equal(t, 2.0, items[2].TotalRevenue)
}

func TestTopByRevenueShortList(t *testing.T) {
	items := rankItems(5, 10)
	got := TopByRevenue(items, 20)
	assert.Len(t, got, 2)
}
