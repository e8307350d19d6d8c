// =============================================================================
// Sheet Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   sheetconv
//   ├── csv      (sheetconv csv -i data.csv --format yaml)
//   ├── xlsx     (sheetconv xlsx -i book.xlsx -o out/ --format markdown)
//   ├── config   (sheetconv config)
//   └── version  (sheetconv version)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command:
//   1. Reads the config file and environment into viper
//   2. Decodes and validates the effective configuration
//   3. Builds the logger (stderr, --verbose forces debug)
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ginjaninja78/sheet-converter/internal/config"
)

// =============================================================================
// APPLICATION STATE
// =============================================================================

// app holds what the subcommands share during one invocation.
type app struct {
	// v layers flags, environment, config file and defaults.
	v *viper.Viper

	// cfgFile is the --config value.
	cfgFile string

	// verbose is the --verbose value.
	verbose bool

	// cfg and logger are set before any subcommand runs.
	cfg    *config.Config
	logger *slog.Logger
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "sheetconv",
		Short: "Sheet Converter - Turn CSV and XLSX tables into JSON, YAML, TOML, CSV or Markdown",
		Long: `Sheet Converter re-shapes tabular exports into formats other tools consume:
config loaders, static site generators and documentation.

Pipelines:
  csv   one delimited file  -> one JSON, YAML or TOML file
  xlsx  one workbook        -> one file per sheet, in any of the five formats

Every cell stays a string; column order is preserved in every format.

Example Usage:
  sheetconv csv -i people.csv -o people.json
  sheetconv csv -i export.tsv -d tab --format toml
  sheetconv xlsx -i sales.xlsx -o out/ --format markdown
  sheetconv config --config ./sheetconv.yaml`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&a.cfgFile,
		"config",
		"",
		"config file (default: ./sheetconv.yaml or ~/.config/sheetconv/sheetconv.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&a.verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.AddCommand(
		newCSVCmd(a),
		newXLSXCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init loads the configuration and builds the logger.
func (a *app) init(logOut io.Writer) error {
	used, err := config.Init(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = newLogger(level, cfg.LogFormat, logOut)

	if used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	return nil
}

// newLogger creates a logger writing to outW in the given format.
func newLogger(level slog.Level, formatStr string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}

// bindFlags binds viper keys to flags of cmd. A changed flag outranks the
// environment and the config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}
