// =============================================================================
// Sheet Converter - XLSX Workbook Reader
// =============================================================================
//
// This module opens an XLSX workbook and reads its worksheets as rows of
// string cells. It does no cleaning of its own; the converter normalizes
// the rows afterwards.
//
// CELL VALUES:
//   By default each cell is returned as Excel would display it, with the
//   cell's number format applied ("3.50" for 3.5 formatted as 0.00).
//   In raw mode the stored value is returned instead ("3.5").
//
// ROW SHAPE (as returned by excelize):
//   - Trailing empty cells of a row are not returned.
//   - Empty rows between data rows are returned as rows with no cells.
//   - Trailing empty rows are not returned.
//
// =============================================================================

package xlsxparser

import (
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// =============================================================================
// WORKBOOK
// =============================================================================

// Workbook is an open XLSX file.
type Workbook struct {
	// Path is the file the workbook was opened from.
	Path string

	file *excelize.File
}

// Open opens the workbook at path. The caller must Close it.
//
// RETURNS:
//   - The open workbook.
//   - A Parse error if the file is not a readable workbook.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, types.NewError(types.KindParse, "opening workbook", path, err)
	}
	return &Workbook{Path: path, file: f}, nil
}

// SheetNames returns the worksheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Rows reads every row of sheet.
//
// PARAMETERS:
//   - sheet: The worksheet name.
//   - raw: Return stored values instead of formatted text.
//
// RETURNS:
//   - The rows in sheet order.
//   - A Parse error if the sheet is missing or cannot be read.
func (w *Workbook) Rows(sheet string, raw bool) ([][]string, error) {
	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: raw})
	if err != nil {
		return nil, types.NewError(types.KindParse, "reading sheet "+sheet, w.Path, err)
	}
	return rows, nil
}

// Close releases the workbook and any temporary files excelize created.
func (w *Workbook) Close() error {
	return w.file.Close()
}
