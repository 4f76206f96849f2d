package components

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarryworks/shelflife/internal/tui/theme"
)

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total int
		n     int
	}{
		{100, 3},
		{99, 4},
		{7, 7},
		{10, 1},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		assert.Len(t, widths, tt.n)

		sum := 0
		for _, w := range widths {
			sum += w
		}
		assert.Equal(t, tt.total, sum, "total=%d n=%d", tt.total, tt.n)
	}
}

func TestLayoutRowZeroItems(t *testing.T) {
	assert.Nil(t, LayoutRow(100, 0))
}

func TestHorizontalBarsScalesOnLargestFiniteValue(t *testing.T) {
	rows := []BarRow{
		{Label: "a", Value: 10, Color: theme.Active.Green, Suffix: "10"},
		{Label: "b", Value: 5, Color: theme.Active.Green, Suffix: "5"},
	}

	out := HorizontalBars(rows, 60, -1)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)

	// The larger value draws roughly twice the bar.
	aBars := strings.Count(lines[0], "█")
	bBars := strings.Count(lines[1], "█")
	assert.Greater(t, aBars, bBars)
}

func TestHorizontalBarsNaNDrawsNoBar(t *testing.T) {
	rows := []BarRow{
		{Label: "a", Value: math.NaN(), Color: theme.Active.Gray, Suffix: "n/a"},
		{Label: "b", Value: 2, Color: theme.Active.Green, Suffix: "2"},
	}

	out := HorizontalBars(rows, 60, -1)
	lines := strings.Split(out, "\n")
	assert.Zero(t, strings.Count(lines[0], "█"))
	assert.NotZero(t, strings.Count(lines[1], "█"))
}

func TestHorizontalBarsInfFillsBar(t *testing.T) {
	rows := []BarRow{
		{Label: "a", Value: math.Inf(1), Color: theme.Active.Gray, Suffix: "∞"},
		{Label: "b", Value: 1, Color: theme.Active.Green, Suffix: "1"},
	}

	out := HorizontalBars(rows, 60, -1)
	lines := strings.Split(out, "\n")

	// Even the largest finite value stays one cell short of the +Inf bar.
	infBars := strings.Count(lines[0], "█")
	maxFiniteBars := strings.Count(lines[1], "█")
	assert.Greater(t, infBars, maxFiniteBars)
	assert.Equal(t, infBars-1, maxFiniteBars)
}

func TestHorizontalBarsEmpty(t *testing.T) {
	assert.Empty(t, HorizontalBars(nil, 60, -1))
}
