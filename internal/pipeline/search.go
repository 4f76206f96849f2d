package pipeline

import (
	"strings"

	"github.com/quarryworks/shelflife/internal/model"
)

// FilterByItem returns the items whose Item contains the query,
// case-insensitively, preserving order. An empty query means no filtering.
// An empty result is an informational state for the caller, not an error.
func FilterByItem(items []model.ComputedItem, query string) []model.ComputedItem {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	var matched []model.ComputedItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Item), q) {
			matched = append(matched, it)
		}
	}
	return matched
}
