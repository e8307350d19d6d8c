package encoder

import (
	"bytes"
	"encoding/csv"

	"github.com/ginjaninja78/sheet-converter/internal/format"
	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// emptyFieldLine is a record holding one empty field. encoding/csv writes
// such a record as a blank line, which readers skip.
const emptyFieldLine = "\"\"\n"

// encodeCSV writes the header row verbatim, then every data row aligned to
// the header width. encoding/csv quotes fields containing the delimiter,
// quotes or line breaks. A table without columns encodes to nothing.
func encodeCSV(table types.Table) ([]byte, error) {
	if table.Width() == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	write := func(row []string) error {
		if len(row) == 1 && row[0] == "" {
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}
			buf.WriteString(emptyFieldLine)
			return nil
		}
		return w.Write(row)
	}

	if err := write(table.Headers); err != nil {
		return nil, serializationError(format.CSV, err)
	}
	for _, row := range table.Rows {
		if err := write(table.Aligned(row)); err != nil {
			return nil, serializationError(format.CSV, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, serializationError(format.CSV, err)
	}
	return buf.Bytes(), nil
}
