// =============================================================================
// Sheet Converter - CSV Parser Module
// =============================================================================
//
// This module reads a delimited text file into a types.Table. It handles:
//   - Different delimiters (comma, pipe, tab, semicolon, any single rune)
//   - Ragged rows (rows shorter or longer than the header)
//   - Files with or without a header row
//   - A UTF-8 byte order mark written by spreadsheet exports
//
// The whole file is read into memory; inputs are assumed to fit.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// bom is the UTF-8 byte order mark.
const bom = "\uFEFF"

// =============================================================================
// SETTINGS
// =============================================================================

// Settings controls how a delimited file is read.
type Settings struct {
	// Delimiter separates fields. Default: ','.
	Delimiter rune

	// Header reports whether the first row holds the column names.
	// When false, columns are named col1, col2, ... and every row is data.
	Header bool

	// LazyQuotes accepts quotes inside unquoted fields.
	LazyQuotes bool
}

// =============================================================================
// DELIMITERS
// =============================================================================

// ParseDelimiter resolves a delimiter name or literal character.
//
// Accepted values:
//   - "\t", `\t`, "tab"   : tab
//   - "pipe"              : '|'
//   - "semicolon"         : ';'
//   - "comma", ""         : ','
//   - any single rune     : that rune
func ParseDelimiter(value string) (rune, error) {
	switch strings.ToLower(value) {
	case "", "comma":
		return ',', nil
	case "\t", `\t`, "tab":
		return '\t', nil
	case "pipe":
		return '|', nil
	case "semicolon":
		return ';', nil
	}

	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", value)
	}
	return r, nil
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a delimited file.
//
// PARAMETERS:
//   - filePath: The path to the file.
//   - settings: Delimiter and header options.
//
// RETURNS:
//   - The table of headers and data rows.
//   - An IO error if the file cannot be opened, or a Parse error if the
//     content is malformed.
func Parse(filePath string, settings Settings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, types.NewError(types.KindIO, "opening CSV", filePath, err)
	}
	defer file.Close()

	table, err := Read(bufio.NewReader(file), settings)
	if err != nil {
		return nil, types.NewError(types.KindParse, "reading CSV", filePath, err)
	}
	return table, nil
}

// Read parses delimited data from r. An empty input gives an empty table.
func Read(r io.Reader, settings Settings) (*types.Table, error) {
	csvReader := csv.NewReader(r)
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(allRows) == 0 {
		return &types.Table{Headers: []string{}, Rows: [][]string{}}, nil
	}

	// Strip the byte order mark from the very first cell.
	if len(allRows[0]) > 0 {
		allRows[0][0] = strings.TrimPrefix(allRows[0][0], bom)
	}

	if !settings.Header {
		return &types.Table{
			Headers: positionalHeaders(allRows),
			Rows:    allRows,
		}, nil
	}

	return &types.Table{
		Headers: allRows[0],
		Rows:    allRows[1:],
	}, nil
}

// configureReader applies settings to the CSV reader.
func configureReader(reader *csv.Reader, settings Settings) {
	reader.Comma = settings.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}

	// Ragged rows are aligned later against the header.
	reader.FieldsPerRecord = -1

	reader.LazyQuotes = settings.LazyQuotes

	// Cells are kept verbatim.
	reader.TrimLeadingSpace = false
}

// positionalHeaders names columns col1..colN, N being the widest row.
func positionalHeaders(rows [][]string) []string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	headers := make([]string, width)
	for i := range headers {
		headers[i] = fmt.Sprintf("col%d", i+1)
	}
	return headers
}
