package xlsxparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// buildWorkbook writes a workbook with the given sheets, in order, and
// returns its path. The default "Sheet1" is renamed to the first sheet.
func buildWorkbook(t *testing.T, names []string, sheets map[string][][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range names {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(name, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpenAndRead(t *testing.T) {
	path := buildWorkbook(t, []string{"People", "Cities"}, map[string][][]any{
		"People": {
			{"name", "age"},
			{"Alice", 30},
			{"Bob", 25},
		},
		"Cities": {
			{"city"},
			{"Zurich"},
		},
	})

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, path, wb.Path)
	assert.Equal(t, []string{"People", "Cities"}, wb.SheetNames())

	rows, err := wb.Rows("People", false)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"name", "age"}, {"Alice", "30"}, {"Bob", "25"}}, rows)

	rows, err = wb.Rows("Cities", false)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"city"}, {"Zurich"}}, rows)
}

func TestRowsRawValues(t *testing.T) {
	path := buildWorkbook(t, []string{"Prices"}, map[string][][]any{
		"Prices": {
			{"price"},
			{3.5},
		},
	})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	style, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Prices", "A2", "A2", style))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	formatted, err := wb.Rows("Prices", false)
	require.NoError(t, err)
	assert.Equal(t, "3.50", formatted[1][0])

	raw, err := wb.Rows("Prices", true)
	require.NoError(t, err)
	assert.Equal(t, "3.5", raw[1][0])
}

func TestRowsMissingSheet(t *testing.T) {
	path := buildWorkbook(t, []string{"Only"}, map[string][][]any{"Only": {{"a"}}})

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.Rows("Nope", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrParse))
}

func TestOpenNotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("name,age\n"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrParse))
	assert.Contains(t, err.Error(), path)
}
