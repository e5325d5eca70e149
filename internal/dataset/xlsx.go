package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readExcelTable reads the first sheet of an Excel workbook into a header row
// plus data rows. Layoff exports come as single-sheet workbooks, so no sheet
// discovery is attempted.
func readExcelTable(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty table")
	}

	return rows[0], rows[1:], nil
}
