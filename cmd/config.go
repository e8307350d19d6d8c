// =============================================================================
// Sheet Converter - Config Command
// =============================================================================
//
// This file defines the 'config' command, which prints the effective
// configuration (defaults, config file and environment merged) as YAML.
// The output is a valid config file.
//
// COMMAND USAGE:
//   sheetconv config [--config file]
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

// newConfigCmd builds the 'config' command.
func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  `Print the effective configuration as YAML, after merging defaults, the config file and SHEETCONV_* environment variables.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
