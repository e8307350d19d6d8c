// =============================================================================
// Sheet Converter - XLSX Command
// =============================================================================
//
// This file defines the 'xlsx' command, which converts every sheet of a
// workbook to its own file named <input_stem>_<sheet_name>.<ext>.
//
// COMMAND USAGE:
//   sheetconv xlsx -i <workbook> [flags]
//
// FLAGS:
//   -i, --input           : Workbook to convert (required)
//   -o, --output-dir      : Directory for the output files (default: .)
//       --format          : json, yaml, toml, csv or markdown (default: json)
//       --keep-empty-rows : Keep rows whose cells are all empty
//       --keep-whitespace : Keep leading and trailing whitespace in cells
//       --raw-values      : Read stored values instead of formatted text
//
// By default empty rows are dropped and cells are trimmed.
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

// newXLSXCmd builds the 'xlsx' command.
func newXLSXCmd(a *app) *cobra.Command {
	var input string

	xlsxCmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Convert every sheet of a workbook to its own file",
		Long: `Convert every sheet of a workbook to its own file.

For each sheet, in workbook order, the first row left after cleaning names
the columns and every later row is data. Sheets that cannot be read are
reported and skipped; the others are still converted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runXLSX(cmd, input)
		},
	}

	flags := xlsxCmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "Workbook to convert (required)")
	flags.StringP("output-dir", "o", ".", "Directory for the output files")
	flags.String("format", format.JSON.String(), "Output format: "+format.Names(format.For(format.PipelineXLSX)))
	flags.Bool("keep-empty-rows", false, "Keep rows whose cells are all empty")
	flags.Bool("keep-whitespace", false, "Keep leading and trailing whitespace in cells")
	flags.Bool("raw-values", false, "Read stored cell values instead of formatted text")
	_ = xlsxCmd.MarkFlagRequired("input")

	bindFlags(a.v, flags, map[string]string{
		"xlsx.output_dir":      "output-dir",
		"xlsx.format":          "format",
		"xlsx.keep_empty_rows": "keep-empty-rows",
		"xlsx.keep_whitespace": "keep-whitespace",
		"xlsx.raw_values":      "raw-values",
	})
	return xlsxCmd
}

// runXLSX executes the XLSX pipeline with the effective settings.
func (a *app) runXLSX(cmd *cobra.Command, input string) error {
	settings := a.cfg.XLSX

	outputFormat, err := settings.OutputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Sheet Converter ===")
	fmt.Fprintf(out, "Converting %s (xlsx -> %s)...\n", filepath.Base(input), outputFormat)

	result, err := converter.New(a.logger).ConvertXLSX(converter.XLSXOptions{
		Input:           input,
		OutputDir:       settings.OutputDir,
		Format:          outputFormat,
		RemoveEmptyRows: !settings.KeepEmptyRows,
		TrimWhitespace:  !settings.KeepWhitespace,
		RawValues:       settings.RawValues,
	})
	if err != nil {
		fmt.Fprintf(out, "  ✗ %s: %v\n", filepath.Base(input), err)
		return err
	}

	for _, output := range result.Outputs {
		fmt.Fprintf(out, "  ✓ %s -> %s (%d rows, %d columns)\n",
			output.Sheet, output.Path, output.Rows, output.Columns)
	}
	for _, skipped := range result.Skipped {
		fmt.Fprintf(out, "  ✗ %s: %v\n", skipped.Sheet, skipped.Err)
	}
	printSummary(cmd, result)
	return nil
}
