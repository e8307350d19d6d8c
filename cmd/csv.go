// =============================================================================
// Sheet Converter - CSV Command
// =============================================================================
//
// This file defines the 'csv' command, which converts one delimited file to
// one JSON, YAML or TOML file.
//
// COMMAND USAGE:
//   sheetconv csv -i <file> [flags]
//
// FLAGS:
//   -i, --input       : Delimited file to convert (required)
//   -o, --output      : Output file (default: output.<ext>)
//   -d, --delimiter   : Field delimiter: a character, tab, pipe or semicolon
//       --header      : First row holds the column names (default: true)
//       --lazy-quotes : Accept quotes inside unquoted fields
//       --format      : json, yaml or toml (default: json)
//
// Every flag except --input can also come from the config file (csv.*) or
// the environment (SHEETCONV_CSV_*).
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sheet-converter/internal/converter"
	"github.com/ginjaninja78/sheet-converter/internal/format"
)

// newCSVCmd builds the 'csv' command.
func newCSVCmd(a *app) *cobra.Command {
	var input string

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert a delimited file to JSON, YAML or TOML",
		Long: `Convert a delimited file to JSON, YAML or TOML.

The first row names the columns; every later row becomes one record whose
keys follow the column order. Missing cells become empty strings, extra
cells are dropped. With --header=false the columns are named col1, col2, ...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCSV(cmd, input)
		},
	}

	flags := csvCmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "Delimited file to convert (required)")
	flags.StringP("output", "o", "", "Output file (default: output.<ext>)")
	flags.StringP("delimiter", "d", ",", "Field delimiter: a character, tab, pipe or semicolon")
	flags.Bool("header", true, "First row holds the column names")
	flags.Bool("lazy-quotes", false, "Accept quotes inside unquoted fields")
	flags.String("format", format.JSON.String(), "Output format: "+format.Names(format.For(format.PipelineCSV)))
	_ = csvCmd.MarkFlagRequired("input")

	bindFlags(a.v, flags, map[string]string{
		"csv.output":      "output",
		"csv.delimiter":   "delimiter",
		"csv.header":      "header",
		"csv.lazy_quotes": "lazy-quotes",
		"csv.format":      "format",
	})
	return csvCmd
}

// runCSV executes the CSV pipeline with the effective settings.
func (a *app) runCSV(cmd *cobra.Command, input string) error {
	settings := a.cfg.CSV

	delimiter, err := settings.DelimiterRune()
	if err != nil {
		return err
	}
	outputFormat, err := settings.OutputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Sheet Converter ===")
	fmt.Fprintf(out, "Converting %s (csv -> %s)...\n", filepath.Base(input), outputFormat)

	result, err := converter.New(a.logger).ConvertCSV(converter.CSVOptions{
		Input:      input,
		Output:     settings.Output,
		Delimiter:  delimiter,
		Header:     settings.Header,
		LazyQuotes: settings.LazyQuotes,
		Format:     outputFormat,
	})
	if err != nil {
		fmt.Fprintf(out, "  ✗ %s: %v\n", filepath.Base(input), err)
		return err
	}

	for _, output := range result.Outputs {
		fmt.Fprintf(out, "  ✓ %s -> %s (%d records, %d columns)\n",
			filepath.Base(input), output.Path, output.Rows, output.Columns)
	}
	printSummary(cmd, result)
	return nil
}

// printSummary writes the closing block shared by both pipelines.
func printSummary(cmd *cobra.Command, result *converter.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n=== Conversion Complete ===")
	fmt.Fprintf(out, "Files written:   %d\n", len(result.Outputs))
	if len(result.Skipped) > 0 {
		fmt.Fprintf(out, "Sheets skipped:  %d\n", len(result.Skipped))
	}
	fmt.Fprintf(out, "Time elapsed:    %s\n", result.Duration)
}
