package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/sheet-converter/internal/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		opts NormalizeOptions
		want types.Table
	}{
		{
			name: "empty rows removed",
			rows: [][]string{{"A", "B"}, {"", ""}, {"C", "D"}},
			opts: NormalizeOptions{RemoveEmptyRows: true},
			want: types.Table{
				Headers: []string{"A", "B"},
				Rows:    [][]string{{"C", "D"}},
			},
		},
		{
			name: "empty rows kept as data",
			rows: [][]string{{"A", "B"}, {"", ""}, {"C", "D"}},
			opts: NormalizeOptions{},
			want: types.Table{
				Headers: []string{"A", "B"},
				Rows:    [][]string{{"", ""}, {"C", "D"}},
			},
		},
		{
			name: "whitespace trimmed",
			rows: [][]string{{" id ", "name"}, {"1", "  x  "}},
			opts: NormalizeOptions{TrimWhitespace: true},
			want: types.Table{
				Headers: []string{"id", "name"},
				Rows:    [][]string{{"1", "x"}},
			},
		},
		{
			name: "whitespace preserved",
			rows: [][]string{{"id", "name"}, {"1", "  x  "}},
			opts: NormalizeOptions{},
			want: types.Table{
				Headers: []string{"id", "name"},
				Rows:    [][]string{{"1", "  x  "}},
			},
		},
		{
			name: "whitespace-only row is empty after trimming",
			rows: [][]string{{"a"}, {"   ", "\t"}, {"b"}},
			opts: NormalizeOptions{TrimWhitespace: true, RemoveEmptyRows: true},
			want: types.Table{
				Headers: []string{"a"},
				Rows:    [][]string{{"b"}},
			},
		},
		{
			name: "whitespace-only row survives without trimming",
			rows: [][]string{{"a"}, {"   "}},
			opts: NormalizeOptions{RemoveEmptyRows: true},
			want: types.Table{
				Headers: []string{"a"},
				Rows:    [][]string{{"   "}},
			},
		},
		{
			name: "leading empty rows never become the header",
			rows: [][]string{{}, {"", ""}, {"h1", "h2"}, {"v1", "v2"}},
			opts: NormalizeOptions{RemoveEmptyRows: true},
			want: types.Table{
				Headers: []string{"h1", "h2"},
				Rows:    [][]string{{"v1", "v2"}},
			},
		},
		{
			name: "everything filtered out",
			rows: [][]string{{"", ""}, {}},
			opts: NormalizeOptions{RemoveEmptyRows: true},
			want: types.Table{Headers: []string{}, Rows: [][]string{}},
		},
		{
			name: "no rows",
			rows: nil,
			opts: NormalizeOptions{TrimWhitespace: true, RemoveEmptyRows: true},
			want: types.Table{Headers: []string{}, Rows: [][]string{}},
		},
		{
			name: "header only",
			rows: [][]string{{"a", "b"}},
			opts: NormalizeOptions{},
			want: types.Table{Headers: []string{"a", "b"}, Rows: [][]string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.rows, tt.opts))
		})
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	rows := [][]string{{" a "}, {" b "}}
	Normalize(rows, NormalizeOptions{TrimWhitespace: true})
	assert.Equal(t, [][]string{{" a "}, {" b "}}, rows)
}
