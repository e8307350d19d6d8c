package encoder

import (
	"bytes"

	"github.com/goccy/go-json"

	"github.com/ginjaninja78/sheet-converter/internal/format"
	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// jsonIndent is the per-level indentation of pretty-printed JSON.
const jsonIndent = "  "

// Cells are written as typed; <, > and & are not escaped.
var jsonOptions = []json.EncodeOptionFunc{json.DisableHTMLEscape()}

// jsonRecord marshals its fields as a JSON object in slice order.
// A Go map would sort the keys.
type jsonRecord []types.Field

// MarshalJSON implements json.Marshaler.
func (r jsonRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.MarshalWithOption(f.Key, jsonOptions...)
		if err != nil {
			return nil, err
		}
		value, err := json.MarshalWithOption(f.Value, jsonOptions...)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSON renders records as a pretty-printed array of objects.
func encodeJSON(records []types.Record) ([]byte, error) {
	out := make([]jsonRecord, len(records))
	for i, r := range records {
		out[i] = jsonRecord(r.Fields())
	}

	data, err := json.MarshalIndentWithOption(out, "", jsonIndent, jsonOptions...)
	if err != nil {
		return nil, serializationError(format.JSON, err)
	}
	return append(data, '\n'), nil
}
