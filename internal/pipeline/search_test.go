package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryworks/shelflife/internal/model"
)

func searchItems(names ...string) []model.ComputedItem {
	items := make([]model.ComputedItem, len(names))
	for i, n := range names {
		items[i].Item = n
	}
	return items
}

func TestFilterByItemCaseInsensitiveSubstring(t *testing.T) {
	items := searchItems("Widget A", "SUPER-WIDGET", "Gadget", "widgetry")

	got := FilterByItem(items, "wid")
	require.Len(t, got, 3)
	assert.Equal(t, "Widget A", got[0].Item)
	assert.Equal(t, "SUPER-WIDGET", got[1].Item)
	assert.Equal(t, "widgetry", got[2].Item)
}

func TestFilterByItemEmptyQueryReturnsAll(t *testing.T) {
	items := searchItems("A", "B", "C")
	got := FilterByItem(items, "")
	assert.Equal(t, items, got)
}

func TestFilterByItemNoMatches(t *testing.T) {
	items := searchItems("Widget A", "Widget B")
	got := FilterByItem(items, "bolt")
	assert.Empty(t, got)
}

func TestFilterByItemPreservesOrder(t *testing.T) {
	items := searchItems("b-2", "a-1", "b-1")
	got := FilterByItem(items, "b-")
	require.Len(t, got, 2)
	assert.Equal(t, "b-2", got[0].Item)
	assert.Equal(t, "b-1", got[1].Item)
}
