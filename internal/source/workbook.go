package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook extracts the first sheet of an XLSX report as string records.
// Exported reports from accounting tools arrive in the same shape as the
// CSV: descriptive preamble, header, item rows, summary row. The sheet is
// flattened to records here and the rest of the pipeline is shared.
func readWorkbook(path string) ([][]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
