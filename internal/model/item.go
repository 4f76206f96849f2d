// Package model defines the row types that flow through the shelflife pipeline.
package model

// CleanRow is one item row after column normalization and numeric cleaning.
// The three required columns are named fields; any other numeric columns from
// the report are carried through in Extra for pass-through display.
type CleanRow struct {
	Item               string
	TotalRevenue       float64
	CurrentOnHandValue float64

	// Extra holds cleaned values for columns beyond the required three,
	// keyed by normalized column name. ExtraOrder preserves the report's
	// column order for display.
	Extra      map[string]float64
	ExtraOrder []string
}

// Category is the coverage band for an item's cover months.
type Category int

const (
	CategoryDanger Category = iota // under 1 month of cover
	CategoryLow                    // 1 to 3 months
	CategoryNormal                 // 3 to 6 months
	CategoryExcess                 // over 6 months
)

// String returns the display label for the band.
func (c Category) String() string {
	switch c {
	case CategoryDanger:
		return "Danger (<1 month)"
	case CategoryLow:
		return "Low (1-3 months)"
	case CategoryNormal:
		return "Normal (3-6 months)"
	case CategoryExcess:
		return "Excess (>6 months)"
	}
	return "Unknown"
}

// Short returns the compact band name used in narrow table columns.
func (c Category) Short() string {
	switch c {
	case CategoryDanger:
		return "Danger"
	case CategoryLow:
		return "Low"
	case CategoryNormal:
		return "Normal"
	case CategoryExcess:
		return "Excess"
	}
	return "?"
}

// ComputedItem is a CleanRow augmented with the derived allocation columns.
// All derived fields are pure functions of (TotalRevenue, CurrentOnHandValue,
// totalRev, budget); the whole slice is recomputed on any input change.
type ComputedItem struct {
	CleanRow

	RevWeight             float64
	AnnualBudgetAlloc     float64
	MonthlyBudgetAlloc    float64
	CurrentInventoryValue float64
	CoverMonths           float64
	Category              Category
}

// PreparedTable is the output of table preparation: the summary row's revenue
// scalar plus the item rows, ready for the allocation engine.
type PreparedTable struct {
	TotalRevenue float64 // from the summary row, the weighting denominator
	SummaryItem  string  // the summary row's Item label as it appeared
	Items        []CleanRow
	Columns      []string // normalized column names in report order
}
