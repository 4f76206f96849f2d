// Package source reads inventory/revenue reports (CSV or XLSX) and prepares
// them into cleaned item tables for the allocation pipeline.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quarryworks/shelflife/internal/model"
)

// DefaultSkipRows is the number of leading descriptive lines the report
// format carries before the header row.
const DefaultSkipRows = 3

// Required column names after header normalization.
const (
	ColItem               = "Item"
	ColTotalRevenue       = "TotalRevenue"
	ColCurrentOnHandValue = "CurrentOnHandValue"
)

// ErrNoSummaryRow is returned when no row's Item starts with "total".
// The summary row supplies the weighting denominator, so nothing can be
// computed without it.
var ErrNoSummaryRow = errors.New("no summary row (Item starting with \"Total\") found")

// MissingColumnError reports a required column absent from the header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in header", e.Column)
}

// ReadReport reads a report file and prepares it. The format is chosen by
// extension: .xlsx goes through the workbook reader, everything else is CSV.
func ReadReport(path string, skip int) (model.PreparedTable, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err := readWorkbook(path)
		if err != nil {
			return model.PreparedTable{}, fmt.Errorf("reading %s: %w", path, err)
		}
		return Prepare(records, skip)
	}

	f, err := os.Open(path)
	if err != nil {
		return model.PreparedTable{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := ReadCSV(f)
	if err != nil {
		return model.PreparedTable{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Prepare(records, skip)
}

// ReadCSV parses CSV records from r. Rows may be ragged (the leading
// descriptive lines rarely match the header's field count) and quoting in
// the preamble is not trusted, so both checks are relaxed.
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}

// NormalizeHeader strips surrounding whitespace and removes internal spaces
// from a column name: "  Current OnHand Value " -> "CurrentOnHandValue".
func NormalizeHeader(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "")
}

// IsSummaryItem reports whether an Item label marks the summary row:
// trimmed, lower-cased, prefix "total". "Subtotal" does not match.
func IsSummaryItem(item string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(item)), "total")
}

// Prepare turns raw records into a PreparedTable: skip the leading
// descriptive rows, normalize the header, clean every non-Item cell, then
// split out the summary row whose TotalRevenue is the weighting denominator.
//
// Only the first summary row is used; later rows that also start with
// "total" are kept as ordinary items.
func Prepare(records [][]string, skip int) (model.PreparedTable, error) {
	if skip < 0 {
		skip = 0
	}
	if len(records) <= skip {
		return model.PreparedTable{}, fmt.Errorf("report has %d rows, need a header after %d skipped", len(records), skip)
	}
	records = records[skip:]

	header := records[0]
	cols := make([]string, len(header))
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		cols[i] = NormalizeHeader(name)
		if _, seen := colIdx[cols[i]]; !seen {
			colIdx[cols[i]] = i
		}
	}

	for _, required := range []string{ColItem, ColTotalRevenue, ColCurrentOnHandValue} {
		if _, ok := colIdx[required]; !ok {
			return model.PreparedTable{}, &MissingColumnError{Column: required}
		}
	}

	var (
		table      model.PreparedTable
		summarySet bool
	)
	table.Columns = cols

	for _, rec := range records[1:] {
		row := model.CleanRow{Extra: make(map[string]float64)}
		for i, name := range cols {
			if i != colIdx[name] {
				continue // duplicated header name; only the first occurrence is read
			}
			cell := ""
			if i < len(rec) {
				cell = rec[i]
			}
			switch name {
			case ColItem:
				row.Item = cell
			case ColTotalRevenue:
				row.TotalRevenue = CleanNumber(cell)
			case ColCurrentOnHandValue:
				row.CurrentOnHandValue = CleanNumber(cell)
			default:
				row.Extra[name] = CleanNumber(cell)
				row.ExtraOrder = append(row.ExtraOrder, name)
			}
		}

		if !summarySet && IsSummaryItem(row.Item) {
			table.TotalRevenue = row.TotalRevenue
			table.SummaryItem = row.Item
			summarySet = true
			continue
		}
		table.Items = append(table.Items, row)
	}

	if !summarySet {
		return model.PreparedTable{}, ErrNoSummaryRow
	}
	return table, nil
}
