package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sheet-converter/internal/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", JSON},
		{"JSON", JSON},
		{" yaml ", YAML},
		{"yml", YAML},
		{"toml", TOML},
		{"csv", CSV},
		{"markdown", Markdown},
		{"md", Markdown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "json|yaml|toml|csv|markdown")
}

func TestCapabilities(t *testing.T) {
	assert.Equal(t, []Format{JSON, YAML, TOML}, For(PipelineCSV))
	assert.Equal(t, All(), For(PipelineXLSX))

	for _, f := range []Format{CSV, Markdown} {
		err := f.Check(PipelineCSV)
		require.Error(t, err, f.String())
		assert.True(t, errors.Is(err, types.ErrUnsupportedFormat))
		assert.NoError(t, f.Check(PipelineXLSX))
	}
}

func TestParseFor(t *testing.T) {
	f, err := ParseFor("toml", PipelineCSV)
	require.NoError(t, err)
	assert.Equal(t, TOML, f)

	_, err = ParseFor("md", PipelineCSV)
	assert.True(t, errors.Is(err, types.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "json|yaml|toml")
}

func TestExtAndString(t *testing.T) {
	exts := map[Format]string{JSON: "json", YAML: "yaml", TOML: "toml", CSV: "csv", Markdown: "md"}
	for f, ext := range exts {
		assert.Equal(t, ext, f.Ext())
		assert.True(t, f.Valid())
	}
	assert.Equal(t, "markdown", Markdown.String())
	assert.False(t, Format(0).Valid())
	assert.Equal(t, "format(0)", Format(0).String())
}
