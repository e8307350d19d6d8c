package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/sheet-converter/internal/config"
	"github.com/ginjaninja78/sheet-converter/internal/types"
)

// sandbox moves the test into an empty working directory and home so no
// stray sheetconv.yaml is picked up. It returns the working directory.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func write(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVCommand(t *testing.T) {
	dir := sandbox(t)
	input := write(t, filepath.Join(dir, "people.csv"), "name,age\nAlice,30\nBob,25\n")
	output := filepath.Join(dir, "people.json")

	stdout, _, err := run(t, "csv", "-i", input, "-o", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Alice","age":"30"},{"name":"Bob","age":"25"}]`, string(data))

	assert.Contains(t, stdout, "Converting people.csv (csv -> json)")
	assert.Contains(t, stdout, "✓ people.csv -> "+output+" (2 records, 2 columns)")
	assert.Contains(t, stdout, "Files written:   1")
}

func TestCSVCommandDefaults(t *testing.T) {
	dir := sandbox(t)
	write(t, filepath.Join(dir, "in.tsv"), "a\tb\n1\t2\n")

	_, _, err := run(t, "csv", "-i", "in.tsv", "-d", "tab", "--format", "toml")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "output.toml"))
	require.NoError(t, err)
	assert.Equal(t, "[[records]]\na = '1'\nb = '2'\n", string(data))
}

func TestCSVCommandRejectsTableFormats(t *testing.T) {
	dir := sandbox(t)
	input := write(t, filepath.Join(dir, "in.csv"), "a\n1\n")

	for _, name := range []string{"csv", "markdown"} {
		t.Run(name, func(t *testing.T) {
			output := filepath.Join(dir, "out."+name)
			stdout, _, err := run(t, "csv", "-i", input, "-o", output, "--format", name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrUnsupportedFormat))
			assert.Contains(t, stdout, "✗ in.csv")
			assert.NoFileExists(t, output)
		})
	}
}

func TestCSVCommandMissingInput(t *testing.T) {
	sandbox(t)

	_, _, err := run(t, "csv", "-i", "nope.csv")
	require.Error(t, err)
	assert.Equal(t, types.KindInputNotFound, types.KindOf(err))

	_, _, err = run(t, "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "input" not set`)
}

func TestCSVCommandConfigLayers(t *testing.T) {
	dir := sandbox(t)
	input := write(t, filepath.Join(dir, "in.csv"), "a;b\n1;2\n")
	cfgFile := write(t, filepath.Join(dir, "custom.yaml"), "csv:\n  delimiter: semicolon\n  format: yaml\n  output: from-file.yaml\n")

	// File settings apply.
	_, _, err := run(t, "--config", cfgFile, "csv", "-i", input)
	require.NoError(t, err)
	var records []map[string]string
	data, err := os.ReadFile(filepath.Join(dir, "from-file.yaml"))
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &records))
	assert.Equal(t, []map[string]string{{"a": "1", "b": "2"}}, records)

	// Environment beats the file.
	t.Setenv("SHEETCONV_CSV_OUTPUT", "from-env.yaml")
	_, _, err = run(t, "--config", cfgFile, "csv", "-i", input)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "from-env.yaml"))

	// A changed flag beats both.
	_, _, err = run(t, "--config", cfgFile, "csv", "-i", input, "-o", "from-flag.json", "--format", "json")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(dir, "from-flag.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"a":"1","b":"2"}]`, string(data))
}

func TestXLSXCommand(t *testing.T) {
	dir := sandbox(t)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Team"))
	rows := [][]any{{"name", "note"}, {"", ""}, {" Ann ", "a|b"}}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Team", cell, &row))
	}
	input := filepath.Join(dir, "staff.xlsx")
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	outDir := filepath.Join(dir, "docs", "tables")
	stdout, _, err := run(t, "xlsx", "-i", input, "-o", outDir, "--format", "md")
	require.NoError(t, err)

	path := filepath.Join(outDir, "staff_Team.md")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "| name | note |\n| --- | --- |\n| Ann | a\\|b |\n", string(data))
	assert.Contains(t, stdout, "✓ Team -> "+path+" (1 rows, 2 columns)")

	_, _, err = run(t, "xlsx", "-i", input, "-o", outDir, "--format", "json", "--keep-empty-rows", "--keep-whitespace")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(outDir, "staff_Team.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"","note":""},{"name":" Ann ","note":"a|b"}]`, string(data))
}

func TestXLSXCommandUnknownFormat(t *testing.T) {
	sandbox(t)

	_, _, err := run(t, "xlsx", "-i", "book.xlsx", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnsupportedFormat))
}

func TestConfigCommand(t *testing.T) {
	sandbox(t)
	t.Setenv("SHEETCONV_XLSX_FORMAT", "toml")

	stdout, _, err := run(t, "config")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &cfg))
	assert.Equal(t, "toml", cfg.XLSX.Format)
	assert.Equal(t, "json", cfg.CSV.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.True(t, cfg.CSV.Header)
}

func TestConfigCommandInvalidFile(t *testing.T) {
	dir := sandbox(t)
	cfgFile := write(t, filepath.Join(dir, "bad.yaml"), "log_level: loud\n")

	_, _, err := run(t, "--config", cfgFile, "config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestVersionCommand(t *testing.T) {
	sandbox(t)

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sheet Converter")
	assert.Contains(t, stdout, "Version:    "+Version)
}

func TestVerboseLogsToStderr(t *testing.T) {
	dir := sandbox(t)
	input := write(t, filepath.Join(dir, "in.csv"), "a\n1\n")

	stdout, stderr, err := run(t, "-v", "csv", "-i", input)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "parsed input")
	assert.NotContains(t, stdout, "level=")

	_, stderr, err = run(t, "csv", "-i", input)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "level=INFO")
}
