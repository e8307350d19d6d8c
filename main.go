// =============================================================================
// Sheet Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the sheetconv CLI. It delegates command
// execution to the cmd package.
//
// USAGE:
//   sheetconv csv      - Convert a delimited file to JSON, YAML or TOML
//   sheetconv xlsx     - Convert every sheet of a workbook to its own file
//   sheetconv config   - Print the effective configuration
//   sheetconv version  - Display the application version
//
// LAYOUT:
//   - cmd/      : CLI command definitions (Cobra)
//   - internal/ : Parsing, normalization, encoding and the pipelines
//   - pkg/      : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/sheet-converter/cmd"
)

func main() {
	cmd.Execute()
}
