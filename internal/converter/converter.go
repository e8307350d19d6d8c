// =============================================================================
// Sheet Converter - Converter Module
// =============================================================================
//
// This module contains the two conversion pipelines. Each one runs a single
// input to completion and reports what it wrote.
//
// CSV PIPELINE (one file in, one file out):
//   1. Check the target format (JSON, YAML or TOML only)
//   2. Check that the input exists
//   3. Parse the delimited file
//   4. Build one record per data row
//   5. Encode the records
//   6. Write the output file
//
// XLSX PIPELINE (one workbook in, one file per sheet out):
//   1. Check the target format (any of the five)
//   2. Check that the input exists
//   3. Open the workbook
//   4. Create the output directory
//   5. For each sheet, in workbook order: read rows, normalize, encode, write
//
// A sheet whose rows cannot be read is logged and skipped. Every other
// failure stops the run. Nothing runs concurrently.
//
// =============================================================================

package converter

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/sheet-converter/internal/csvparser"
	"github.com/ginjaninja78/sheet-converter/internal/encoder"
	"github.com/ginjaninja78/sheet-converter/internal/format"
	"github.com/ginjaninja78/sheet-converter/internal/xlsxparser"
	"github.com/ginjaninja78/sheet-converter/pkg/utils"
)

// =============================================================================
// OPTIONS
// =============================================================================

// CSVOptions configures a CSV pipeline run.
type CSVOptions struct {
	// Input is the delimited file to read. It must exist.
	Input string

	// Output is the file to write. Default: output.<ext> in the working
	// directory. An existing file is overwritten.
	Output string

	// Delimiter separates fields. Default: ','.
	Delimiter rune

	// Header reports whether the first row holds the column names.
	Header bool

	// LazyQuotes accepts quotes inside unquoted fields.
	LazyQuotes bool

	// Format is the target format: JSON, YAML or TOML.
	Format format.Format
}

// XLSXOptions configures an XLSX pipeline run.
type XLSXOptions struct {
	// Input is the workbook to read. It must exist.
	Input string

	// OutputDir receives one file per sheet. It is created if missing.
	// Default: ".".
	OutputDir string

	// Format is the target format for every sheet.
	Format format.Format

	// RemoveEmptyRows drops rows whose cells are all empty.
	RemoveEmptyRows bool

	// TrimWhitespace strips leading and trailing whitespace from cells.
	TrimWhitespace bool

	// RawValues reads stored cell values instead of formatted text.
	RawValues bool
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one pipeline run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Input is the file that was read.
	Input string

	// Format is the target format.
	Format format.Format

	// Outputs lists the files written, in the order they were written.
	Outputs []Output

	// Skipped lists the sheets that could not be read.
	Skipped []SkippedSheet

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Output describes one written file.
type Output struct {
	// Sheet is the worksheet name. Empty for the CSV pipeline.
	Sheet string

	// Path is the file written.
	Path string

	// Rows is the number of data rows (records) encoded.
	Rows int

	// Columns is the number of headers.
	Columns int
}

// SkippedSheet is a worksheet left out of the run.
type SkippedSheet struct {
	Sheet string
	Err   error
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// workbook is the part of an open XLSX file the pipeline reads.
type workbook interface {
	SheetNames() []string
	Rows(sheet string, raw bool) ([][]string, error)
	Close() error
}

// Converter runs conversions. It holds no per-run state, so one value can
// serve any number of sequential runs.
type Converter struct {
	logger *slog.Logger

	// openWorkbook opens the XLSX input.
	openWorkbook func(path string) (workbook, error)
}

// New creates a Converter that logs to logger. A nil logger discards output.
func New(logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Converter{
		logger: logger,
		openWorkbook: func(path string) (workbook, error) {
			return xlsxparser.Open(path)
		},
	}
}

// =============================================================================
// CSV PIPELINE
// =============================================================================

// ConvertCSV converts one delimited file to JSON, YAML or TOML.
//
// RETURNS:
//   - The run result, with exactly one output on success.
//   - UnsupportedFormat, InputNotFound, Parse, Serialization or IO errors.
//     No output file is written when the format or input is rejected.
func (c *Converter) ConvertCSV(opts CSVOptions) (*Result, error) {
	startTime := time.Now()
	result := c.newResult(opts.Input, opts.Format)
	log := c.logger.With("run", result.RunID, "pipeline", "csv")

	// =========================================================================
	// STEP 1: CHECK FORMAT
	// =========================================================================

	if err := opts.Format.Check(format.PipelineCSV); err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 2: CHECK INPUT
	// =========================================================================

	if err := utils.RequireFile(opts.Input); err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		output = utils.DefaultOutputName(opts.Format.Ext())
	}
	log.Info("starting conversion", "input", opts.Input, "output", output, "format", opts.Format.String())

	// =========================================================================
	// STEP 3: PARSE INPUT
	// =========================================================================

	settings := csvparser.Settings{
		Delimiter:  opts.Delimiter,
		Header:     opts.Header,
		LazyQuotes: opts.LazyQuotes,
	}
	table, err := csvparser.Parse(opts.Input, settings)
	if err != nil {
		return nil, err
	}
	log.Debug("parsed input", "columns", table.Width(), "rows", len(table.Rows))

	// =========================================================================
	// STEP 4-5: BUILD RECORDS AND ENCODE
	// =========================================================================

	records := table.Records()
	data, err := encoder.EncodeRecords(records, opts.Format)
	if err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 6: WRITE OUTPUT
	// =========================================================================

	if err := utils.WriteFile(output, data); err != nil {
		return nil, err
	}
	log.Info("wrote output", "path", output, "records", len(records), "bytes", len(data))

	result.Outputs = append(result.Outputs, Output{
		Path:    output,
		Rows:    len(records),
		Columns: table.Width(),
	})
	result.Duration = time.Since(startTime)
	log.Info("conversion complete", "outputs", len(result.Outputs), "elapsed", result.Duration)
	return result, nil
}

// =============================================================================
// XLSX PIPELINE
// =============================================================================

// ConvertXLSX converts every sheet of a workbook to its own file.
//
// RETURNS:
//   - The run result, listing written and skipped sheets.
//   - UnsupportedFormat, InputNotFound, Parse (workbook cannot be opened),
//     Serialization or IO errors. Unreadable sheets are not errors.
func (c *Converter) ConvertXLSX(opts XLSXOptions) (*Result, error) {
	startTime := time.Now()
	result := c.newResult(opts.Input, opts.Format)
	log := c.logger.With("run", result.RunID, "pipeline", "xlsx")

	// =========================================================================
	// STEP 1-2: CHECK FORMAT AND INPUT
	// =========================================================================

	if err := opts.Format.Check(format.PipelineXLSX); err != nil {
		return nil, err
	}
	if err := utils.RequireFile(opts.Input); err != nil {
		return nil, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	log.Info("starting conversion", "input", opts.Input, "output_dir", outputDir, "format", opts.Format.String())

	// =========================================================================
	// STEP 3: OPEN WORKBOOK
	// =========================================================================

	wb, err := c.openWorkbook(opts.Input)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := wb.Close(); err != nil {
			log.Warn("closing workbook", "error", err)
		}
	}()

	// =========================================================================
	// STEP 4: CREATE OUTPUT DIRECTORY
	// =========================================================================

	if err := utils.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 5: CONVERT EACH SHEET
	// =========================================================================

	stem := utils.FileStem(opts.Input)
	normalize := NormalizeOptions{
		TrimWhitespace:  opts.TrimWhitespace,
		RemoveEmptyRows: opts.RemoveEmptyRows,
	}

	for _, sheet := range wb.SheetNames() {
		log.Debug("processing sheet", "sheet", sheet)

		rows, err := wb.Rows(sheet, opts.RawValues)
		if err != nil {
			log.Warn("skipping sheet", "sheet", sheet, "error", err)
			result.Skipped = append(result.Skipped, SkippedSheet{Sheet: sheet, Err: err})
			continue
		}

		table := Normalize(rows, normalize)
		data, err := encoder.Encode(table, opts.Format)
		if err != nil {
			return nil, err
		}

		path := utils.SheetOutputPath(outputDir, stem, sheet, opts.Format.Ext())
		if err := utils.WriteFile(path, data); err != nil {
			return nil, err
		}
		log.Info("wrote output", "sheet", sheet, "path", path, "rows", len(table.Rows), "bytes", len(data))

		result.Outputs = append(result.Outputs, Output{
			Sheet:   sheet,
			Path:    filepath.Clean(path),
			Rows:    len(table.Rows),
			Columns: table.Width(),
		})
	}

	result.Duration = time.Since(startTime)
	log.Info("conversion complete",
		"outputs", len(result.Outputs),
		"skipped", len(result.Skipped),
		"elapsed", result.Duration,
	)
	return result, nil
}

// newResult starts a result with a fresh run ID.
func (c *Converter) newResult(input string, f format.Format) *Result {
	return &Result{
		RunID:   uuid.NewString(),
		Input:   input,
		Format:  f,
		Outputs: []Output{},
		Skipped: []SkippedSheet{},
	}
}
