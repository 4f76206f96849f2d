package source

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())
	return path
}

func TestReadReportXLSX(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"Acme Distributing Inc."},
		{"Inventory Valuation Report"},
		{"Generated 2026-08-01"},
		{"Item", "Total Revenue", "Current OnHand Value"},
		{"Widget A", "$600", "250"},
		{"Widget B", "$400", "100"},
		{"Total", "$1,000", "350"},
	})

	table, err := ReadReport(path, DefaultSkipRows)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, table.TotalRevenue)
	require.Len(t, table.Items, 2)
	assert.Equal(t, "Widget A", table.Items[0].Item)
	assert.Equal(t, 600.0, table.Items[0].TotalRevenue)
	assert.Equal(t, 250.0, table.Items[0].CurrentOnHandValue)
}

func TestReadReportXLSXNoSummaryRow(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"preamble"}, {"preamble"}, {"preamble"},
		{"Item", "Total Revenue", "Current OnHand Value"},
		{"Widget A", "600", "250"},
	})

	_, err := ReadReport(path, DefaultSkipRows)
	assert.ErrorIs(t, err, ErrNoSummaryRow)
}

func TestReadReportMissingXLSX(t *testing.T) {
	_, err := ReadReport(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultSkipRows)
	assert.Error(t, err)
}
