package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads the rows of one sheet of an XLSX workbook.
//
// PARAMETERS:
//   - path: The path to the workbook.
//   - sheet: The sheet name. If empty, the first sheet is used.
//
// RETURNS:
//   - The rows of the sheet, including empty ones, in sheet order.
//   - An error wrapping ErrInput if the workbook or sheet cannot be read.
//
// Trailing empty cells are not returned, so a row with only a key in
// column A has a single cell.
func ReadWorkbook(path, sheet string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %w", ErrInput, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook %s has no sheets", ErrInput, path)
	}

	index, err := f.GetSheetIndex(sheet)
	if err != nil || index < 0 {
		return nil, fmt.Errorf("%w: sheet %q not found in %s", ErrInput, sheet, path)
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %w", ErrInput, sheet, err)
	}

	rows := make([]Row, len(cells))
	for i, row := range cells {
		rows[i] = Row{Number: i + 1, Cells: row}
	}

	return rows, nil
}
