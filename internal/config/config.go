// =============================================================================
// Sheet Converter - Configuration Module
// =============================================================================
//
// This module loads the settings shared by the csv and xlsx commands.
//
// SOURCES (highest precedence first):
//   1. Command-line flags (bound to viper keys by the cmd package)
//   2. Environment variables: SHEETCONV_<SECTION>_<KEY>
//      e.g. SHEETCONV_XLSX_OUTPUT_DIR=./out
//   3. Config file: --config, or sheetconv.yaml in "." then
//      $HOME/.config/sheetconv/
//   4. Built-in defaults (see SetDefaults)
//
// EXAMPLE FILE:
//
//	log_level: info
//	log_format: text
//	csv:
//	  delimiter: ";"
//	  format: yaml
//	xlsx:
//	  output_dir: ./out
//	  format: markdown
//	  keep_empty_rows: true
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/sheet-converter/internal/csvparser"
	"github.com/ginjaninja78/sheet-converter/internal/format"
)

const (
	// FileName is the config file name searched for, without extension.
	FileName = "sheetconv"

	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "SHEETCONV"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the effective settings.
type Config struct {
	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// LogFormat selects the log handler.
	// Valid values: "text", "json"
	// Default: "text"
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// CSV holds the defaults of the csv command.
	CSV CSVSettings `mapstructure:"csv" yaml:"csv"`

	// XLSX holds the defaults of the xlsx command.
	XLSX XLSXSettings `mapstructure:"xlsx" yaml:"xlsx"`
}

// CSVSettings contains settings for converting delimited files.
type CSVSettings struct {
	// Output is the output file. Empty means output.<ext>.
	Output string `mapstructure:"output" yaml:"output"`

	// Delimiter is the character used to separate fields.
	// Common values: "," (comma), "|" or "pipe", "\t" or "tab", "semicolon"
	// Default: ","
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// Header reports whether the first row holds the column names.
	// Default: true
	Header bool `mapstructure:"header" yaml:"header"`

	// LazyQuotes accepts quotes inside unquoted fields.
	// Default: false
	LazyQuotes bool `mapstructure:"lazy_quotes" yaml:"lazy_quotes"`

	// Format is the output format: json, yaml or toml.
	// Default: "json"
	Format string `mapstructure:"format" yaml:"format"`
}

// XLSXSettings contains settings for converting workbooks.
type XLSXSettings struct {
	// OutputDir receives one file per sheet.
	// Default: "."
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Format is the output format: json, yaml, toml, csv or markdown.
	// Default: "json"
	Format string `mapstructure:"format" yaml:"format"`

	// KeepEmptyRows keeps rows whose cells are all empty.
	KeepEmptyRows bool `mapstructure:"keep_empty_rows" yaml:"keep_empty_rows"`

	// KeepWhitespace keeps leading and trailing whitespace in cells.
	KeepWhitespace bool `mapstructure:"keep_whitespace" yaml:"keep_whitespace"`

	// RawValues reads stored cell values instead of formatted text.
	RawValues bool `mapstructure:"raw_values" yaml:"raw_values"`
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// SetDefaults registers every key with its default value. Keys must be
// registered for environment variables to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetDefault("csv.output", "")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.header", true)
	v.SetDefault("csv.lazy_quotes", false)
	v.SetDefault("csv.format", format.JSON.String())

	v.SetDefault("xlsx.output_dir", ".")
	v.SetDefault("xlsx.format", format.JSON.String())
	v.SetDefault("xlsx.keep_empty_rows", false)
	v.SetDefault("xlsx.keep_whitespace", false)
	v.SetDefault("xlsx.raw_values", false)
}

// Init points v at the config file and the environment, then reads the file.
//
// PARAMETERS:
//   - v: The viper instance to configure.
//   - cfgFile: An explicit config file, or "" to search the default paths.
//
// RETURNS:
//   - The config file used, or "" when none was found.
//   - An error if an explicit file cannot be read, or a found file is invalid.
func Init(v *viper.Viper, cfgFile string) (string, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes and validates the settings held by v.
//
// RETURNS:
//   - The configuration.
//   - An error if a value does not decode or fails validation.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// applyDefaults fills values left empty by an explicit blank setting.
func applyDefaults(config *Config) {
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
	if config.CSV.Delimiter == "" {
		config.CSV.Delimiter = ","
	}
	if config.CSV.Format == "" {
		config.CSV.Format = format.JSON.String()
	}
	if config.XLSX.OutputDir == "" {
		config.XLSX.OutputDir = "."
	}
	if config.XLSX.Format == "" {
		config.XLSX.Format = format.JSON.String()
	}
}

// Validate checks every setting that has a closed set of values.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format: unknown format %q (want text|json)", c.LogFormat))
	}
	if _, err := c.CSV.DelimiterRune(); err != nil {
		errs = append(errs, fmt.Errorf("csv.delimiter: %w", err))
	}
	if _, err := c.CSV.OutputFormat(); err != nil {
		errs = append(errs, fmt.Errorf("csv.format: %w", err))
	}
	if _, err := c.XLSX.OutputFormat(); err != nil {
		errs = append(errs, fmt.Errorf("xlsx.format: %w", err))
	}

	return errors.Join(errs...)
}

// =============================================================================
// TYPED ACCESSORS
// =============================================================================

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: unknown level %q (want debug|info|warn|error)", c.LogLevel)
	}
	return level, nil
}

// DelimiterRune resolves Delimiter to a single rune.
func (s CSVSettings) DelimiterRune() (rune, error) {
	return csvparser.ParseDelimiter(s.Delimiter)
}

// OutputFormat resolves Format. Whether the CSV pipeline can produce it is
// checked by the converter, before any file is touched.
func (s CSVSettings) OutputFormat() (format.Format, error) {
	return format.Parse(s.Format)
}

// OutputFormat resolves Format for the XLSX pipeline.
func (s XLSXSettings) OutputFormat() (format.Format, error) {
	return format.ParseFor(s.Format, format.PipelineXLSX)
}

// =============================================================================
// RENDERING
// =============================================================================

// YAML renders the configuration in config file form.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return data, nil
}
