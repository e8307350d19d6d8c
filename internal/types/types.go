// =============================================================================
// Sheet Converter - Shared Types
// =============================================================================
//
// This package contains the record model shared by every stage of the
// conversion pipeline. Keeping it here avoids import cycles between:
//   - csvparser / xlsxparser (which produce tables)
//   - converter (which normalizes and orchestrates)
//   - encoder (which renders tables and records to text)
//
// MODEL:
//   Table  : headers + ordered data rows, one per CSV file or worksheet
//   Record : ordered header -> cell mapping built from one data row
//   Field  : one key/value pair inside a record
//
// =============================================================================

package types

// =============================================================================
// TABLE
// =============================================================================

// Table is the in-memory form of one delimited file or one worksheet.
type Table struct {
	// Headers holds the column names in their original order.
	Headers []string `json:"headers" yaml:"headers"`

	// Rows holds the data rows in input order.
	// A row may be shorter or longer than Headers; see Aligned.
	Rows [][]string `json:"rows" yaml:"rows"`
}

// Width returns the number of columns, which is the header count.
func (t Table) Width() int {
	return len(t.Headers)
}

// Aligned returns row padded with empty cells or truncated so that it has
// exactly one cell per header. The input slice is never modified.
func (t Table) Aligned(row []string) []string {
	out := make([]string, len(t.Headers))
	copy(out, row)
	return out
}

// Records builds one record per data row, preserving row order.
// The result is never nil, so an empty table encodes as an empty array.
func (t Table) Records() []Record {
	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		records = append(records, NewRecord(t.Headers, row))
	}
	return records
}

// =============================================================================
// RECORD
// =============================================================================

// Field is a single key/value pair of a record.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered mapping from header name to cell value.
//
// Keys keep the position of their first insertion. Setting an existing key
// replaces its value in place (last write wins), so duplicate headers never
// produce duplicate keys.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord zips headers with row positionally.
//
// PARAMETERS:
//   - headers: The column names.
//   - row: The cell values; missing cells become "", extra cells are dropped.
//
// RETURNS:
//   - A record with one key per distinct header.
func NewRecord(headers, row []string) Record {
	r := Record{
		fields: make([]Field, 0, len(headers)),
		index:  make(map[string]int, len(headers)),
	}
	for i, header := range headers {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		r.Set(header, value)
	}
	return r
}

// Set assigns value to key, appending the key if it is new.
func (r *Record) Set(key, value string) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	i, ok := r.index[key]
	if !ok {
		return "", false
	}
	return r.fields[i].Value, true
}

// Len returns the number of keys.
func (r Record) Len() int {
	return len(r.fields)
}

// Keys returns the keys in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the key/value pairs in order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}
