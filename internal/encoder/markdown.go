package encoder

import (
	"strings"

	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// markdownSeparator is the alignment cell written under every header.
const markdownSeparator = "---"

// markdownEscaper keeps each cell on a single table line.
// "\r\n" is listed before "\r" and "\n" so a CRLF becomes one <br>.
var markdownEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", "<br>",
	"\r", "<br>",
	"\n", "<br>",
)

// encodeMarkdown renders a pipe-delimited table:
//
//	| name | age |
//	| --- | --- |
//	| Alice | 30 |
//
// Header and data cells are escaped alike. A table without headers has no
// columns and renders as empty output.
func encodeMarkdown(table types.Table) []byte {
	if table.Width() == 0 {
		return []byte{}
	}

	var b strings.Builder
	writeMarkdownRow(&b, table.Headers)

	separator := make([]string, table.Width())
	for i := range separator {
		separator[i] = markdownSeparator
	}
	writeMarkdownRow(&b, separator)

	for _, row := range table.Rows {
		writeMarkdownRow(&b, table.Aligned(row))
	}
	return []byte(b.String())
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" ")
		b.WriteString(markdownEscaper.Replace(cell))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
