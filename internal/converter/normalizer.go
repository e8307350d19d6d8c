// =============================================================================
// Sheet Converter - Row Normalizer
// =============================================================================
//
// This module turns the raw rows of one worksheet into a types.Table.
//
// RULES (applied in this order, per row):
//   1. Trim: with TrimWhitespace, leading/trailing whitespace is stripped
//      from every cell before anything else looks at it.
//   2. Classify: a row is empty when every cell is "" (after trimming).
//      A row with no cells at all is empty too.
//   3. Filter: with RemoveEmptyRows, empty rows are dropped. They never
//      become the header and never appear as data.
//   4. Split: the first surviving row is the header row, the rest are data.
//
// If every row is filtered out the table has no headers and no data; the
// encoders render that as an empty array/table.
//
// =============================================================================

package converter

import (
	"strings"

	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// NormalizeOptions selects the cleaning applied to worksheet rows.
type NormalizeOptions struct {
	// TrimWhitespace strips leading and trailing whitespace from every cell.
	TrimWhitespace bool

	// RemoveEmptyRows drops rows whose cells are all empty.
	RemoveEmptyRows bool
}

// Normalize cleans rawRows and splits them into headers and data.
//
// PARAMETERS:
//   - rawRows: The worksheet rows as read; the slice is not modified.
//   - opts: The trimming and empty-row policy.
//
// RETURNS:
//   - The normalized table. Headers and Rows are never nil.
func Normalize(rawRows [][]string, opts NormalizeOptions) types.Table {
	kept := make([][]string, 0, len(rawRows))
	for _, raw := range rawRows {
		row := cleanRow(raw, opts.TrimWhitespace)
		if opts.RemoveEmptyRows && isEmptyRow(row) {
			continue
		}
		kept = append(kept, row)
	}

	if len(kept) == 0 {
		return types.Table{Headers: []string{}, Rows: [][]string{}}
	}
	return types.Table{Headers: kept[0], Rows: kept[1:]}
}

// cleanRow copies raw, trimming every cell when trim is set.
func cleanRow(raw []string, trim bool) []string {
	row := make([]string, len(raw))
	for i, cell := range raw {
		if trim {
			cell = strings.TrimSpace(cell)
		}
		row[i] = cell
	}
	return row
}

// isEmptyRow reports whether every cell of row is "".
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
