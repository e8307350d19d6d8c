// =============================================================================
// Sheet Converter - File Manager Utility
// =============================================================================
//
// This module provides the file handling shared by both pipelines:
//   - Directory management
//   - Input existence checks
//   - Output file naming
//   - Whole-file writes with guaranteed close
//
// NAMING:
//   CSV pipeline  : the --output path, or output.<ext> when none is given
//   XLSX pipeline : <output_dir>/<input_stem>_<sheet_name>.<ext>
//
// =============================================================================

package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// defaultOutputStem names the CSV pipeline output when no path is given.
const defaultOutputStem = "output"

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates dir and any missing parents.
//
// RETURNS:
//   - An IO error if the directory cannot be created.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return types.NewError(types.KindIO, "creating directory", dir, err)
	}
	return nil
}

// =============================================================================
// INPUT CHECKS
// =============================================================================

// RequireFile returns an InputNotFound error unless path names a regular file.
func RequireFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.NewError(types.KindInputNotFound, "opening input", path, err)
	}
	if err != nil {
		return types.NewError(types.KindIO, "opening input", path, err)
	}
	if info.IsDir() {
		return types.NewError(types.KindInputNotFound, "opening input", path, errors.New("is a directory"))
	}
	return nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// FileStem returns the base name of path without its extension.
//
// EXAMPLE:
//
//	"data/report.final.xlsx" -> "report.final"
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultOutputName returns output.<ext>.
func DefaultOutputName(ext string) string {
	return defaultOutputStem + "." + ext
}

// SheetOutputPath returns <dir>/<stem>_<sheet>.<ext>.
//
// EXAMPLE:
//
//	SheetOutputPath("out", "sales", "Q1", "json") -> "out/sales_Q1.json"
func SheetOutputPath(dir, stem, sheet, ext string) string {
	return filepath.Join(dir, stem+"_"+sheet+"."+ext)
}

// =============================================================================
// WRITING
// =============================================================================

// WriteFile creates or truncates path and writes data to it.
// The file is closed on every path; a close failure is reported when the
// write itself succeeded.
//
// RETURNS:
//   - An IO error if the file cannot be created, written or closed.
func WriteFile(path string, data []byte) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return types.NewError(types.KindIO, "creating output", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = types.NewError(types.KindIO, "closing output", path, closeErr)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return types.NewError(types.KindIO, "writing output", path, err)
	}
	return nil
}
