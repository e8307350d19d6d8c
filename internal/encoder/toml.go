package encoder

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"

	"github.com/ginjaninja78/sheet-converter/internal/format"
	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// tomlRootKey wraps the record array; a TOML document cannot be a bare array.
const tomlRootKey = "records"

// encodeTOML renders records as an array of tables under "records".
//
// go-toml sorts map keys, so each table is assembled line by line: the
// library encodes every key/value pair (quoting and escaping both sides) and
// the pairs are emitted in header order.
//
//   [[records]]
//   name = 'Alice'
//   age = '30'
func encodeTOML(records []types.Record) ([]byte, error) {
	var buf bytes.Buffer

	if len(records) == 0 {
		buf.WriteString(tomlRootKey + " = []\n")
		return buf.Bytes(), nil
	}

	for i, r := range records {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString("[[" + tomlRootKey + "]]\n")
		for _, f := range r.Fields() {
			line, err := toml.Marshal(map[string]string{f.Key: f.Value})
			if err != nil {
				return nil, serializationError(format.TOML, err)
			}
			buf.Write(line)
		}
	}
	return buf.Bytes(), nil
}
