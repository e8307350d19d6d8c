// =============================================================================
// Sheet Converter - Encoder Module
// =============================================================================
//
// This module renders tables and records as text. It replaces the single
// XML writer of the original tool with one encoder per output format:
//
//   | Format   | Input   | File          | Library                        |
//   |----------|---------|---------------|--------------------------------|
//   | JSON     | records | json.go       | github.com/goccy/go-json       |
//   | YAML     | records | yaml.go       | gopkg.in/yaml.v3 (node API)    |
//   | TOML     | records | toml.go       | github.com/pelletier/go-toml/v2|
//   | CSV      | table   | csv.go        | encoding/csv                   |
//   | Markdown | table   | markdown.go   | (pipe table builder)           |
//
// Encoders are pure: they never touch the filesystem, so every rule can be
// unit tested from in-memory tables. Key order always follows header order.
//
// =============================================================================

package encoder

import (
	"fmt"

	"github.com/ginjaninja78/sheet-converter/internal/format"
	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// =============================================================================
// DISPATCH
// =============================================================================

// Encode renders a table in the given format.
//
// PARAMETERS:
//   - table: Headers and data rows (e.g. one normalized worksheet).
//   - f: Any of the five formats.
//
// RETURNS:
//   - The encoded text.
//   - A Serialization error if the underlying encoder fails, or an
//     UnsupportedFormat error for an undeclared format.
func Encode(table types.Table, f format.Format) ([]byte, error) {
	switch f {
	case format.CSV:
		return encodeCSV(table)
	case format.Markdown:
		return encodeMarkdown(table), nil
	default:
		return EncodeRecords(table.Records(), f)
	}
}

// EncodeRecords renders already-built records.
//
// Only the record formats (JSON, YAML, TOML) are accepted. CSV and Markdown
// need a header row and are rejected with an UnsupportedFormat error.
func EncodeRecords(records []types.Record, f format.Format) ([]byte, error) {
	if records == nil {
		records = []types.Record{}
	}

	switch f {
	case format.JSON:
		return encodeJSON(records)
	case format.YAML:
		return encodeYAML(records)
	case format.TOML:
		return encodeTOML(records)
	case format.CSV, format.Markdown:
		return nil, types.NewError(types.KindUnsupportedFormat, "encoding records", "",
			fmt.Errorf("format %s needs a table, not records", f))
	default:
		return nil, types.NewError(types.KindUnsupportedFormat, "encoding records", "",
			fmt.Errorf("unknown format %s", f))
	}
}

// serializationError wraps an encoder failure.
func serializationError(f format.Format, err error) error {
	return types.NewError(types.KindSerialization, fmt.Sprintf("encoding %s", f), "", err)
}
