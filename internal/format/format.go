// =============================================================================
// Sheet Converter - Output Formats
// =============================================================================
//
// Format is the closed set of output encodings. Each format knows its
// canonical name, its accepted aliases, its file extension, and which
// pipelines may produce it:
//
//   | Format   | Name     | Aliases | Ext  | CSV pipeline | XLSX pipeline |
//   |----------|----------|---------|------|--------------|---------------|
//   | JSON     | json     |         | json | yes          | yes           |
//   | YAML     | yaml     | yml     | yaml | yes          | yes           |
//   | TOML     | toml     |         | toml | yes          | yes           |
//   | CSV      | csv      |         | csv  | no           | yes           |
//   | Markdown | markdown | md      | md   | no           | yes           |
//
// =============================================================================

package format

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// Format identifies an output encoding.
type Format int

const (
	JSON Format = iota + 1
	YAML
	TOML
	CSV
	Markdown
)

// Pipeline is a bit set of conversion pipelines.
type Pipeline uint8

const (
	// PipelineCSV is the single-file CSV conversion.
	PipelineCSV Pipeline = 1 << iota

	// PipelineXLSX is the per-sheet workbook conversion.
	PipelineXLSX
)

// String returns the pipeline name used in error messages.
func (p Pipeline) String() string {
	switch p {
	case PipelineCSV:
		return "csv"
	case PipelineXLSX:
		return "xlsx"
	default:
		return fmt.Sprintf("pipeline(%d)", uint8(p))
	}
}

type descriptor struct {
	name      string
	aliases   []string
	ext       string
	pipelines Pipeline
}

var descriptors = map[Format]descriptor{
	JSON:     {name: "json", ext: "json", pipelines: PipelineCSV | PipelineXLSX},
	YAML:     {name: "yaml", aliases: []string{"yml"}, ext: "yaml", pipelines: PipelineCSV | PipelineXLSX},
	TOML:     {name: "toml", ext: "toml", pipelines: PipelineCSV | PipelineXLSX},
	CSV:      {name: "csv", ext: "csv", pipelines: PipelineXLSX},
	Markdown: {name: "markdown", aliases: []string{"md"}, ext: "md", pipelines: PipelineXLSX},
}

// All lists every format in declaration order.
func All() []Format {
	return []Format{JSON, YAML, TOML, CSV, Markdown}
}

// For lists the formats a pipeline supports, in declaration order.
func For(p Pipeline) []Format {
	var out []Format
	for _, f := range All() {
		if f.Supports(p) {
			out = append(out, f)
		}
	}
	return out
}

// Names joins the canonical names of formats with "|", for flag help text.
func Names(formats []Format) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return strings.Join(names, "|")
}

// String returns the canonical name.
func (f Format) String() string {
	if d, ok := descriptors[f]; ok {
		return d.name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Ext returns the file extension without the leading dot.
func (f Format) Ext() string {
	return descriptors[f].ext
}

// Valid reports whether f is one of the declared formats.
func (f Format) Valid() bool {
	_, ok := descriptors[f]
	return ok
}

// Supports reports whether the pipeline can produce this format.
func (f Format) Supports(p Pipeline) bool {
	return descriptors[f].pipelines&p != 0
}

// Parse resolves a name or alias, case-insensitively.
//
// RETURNS:
//   - The format.
//   - An UnsupportedFormat error if the name is not known.
func Parse(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, f := range All() {
		d := descriptors[f]
		if normalized == d.name {
			return f, nil
		}
		for _, alias := range d.aliases {
			if normalized == alias {
				return f, nil
			}
		}
	}
	return 0, types.NewError(types.KindUnsupportedFormat, "parsing format", "",
		fmt.Errorf("unknown format %q (want one of %s)", name, Names(All())))
}

// ParseFor resolves a name and checks that the pipeline supports it.
func ParseFor(name string, p Pipeline) (Format, error) {
	f, err := Parse(name)
	if err != nil {
		return 0, err
	}
	if err := f.Check(p); err != nil {
		return 0, err
	}
	return f, nil
}

// Check returns an UnsupportedFormat error if the pipeline cannot produce f.
func (f Format) Check(p Pipeline) error {
	if f.Supports(p) {
		return nil
	}
	return types.NewError(types.KindUnsupportedFormat, "checking format", "",
		fmt.Errorf("format %s is not available in the %s pipeline (want one of %s)", f, p, Names(For(p))))
}
