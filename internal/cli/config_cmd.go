// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hill/internal/config"
)

// newConfigCommand creates the `hill config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Show hill configuration",
		Long: `Show hill configuration.

Values are resolved from defaults, the config file, HILL_* environment
variables and flags, in that order of precedence. The config file is
searched as <user config dir>/hill/config.{yaml,toml,json}.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := app.cfg.EncodeTOML()
			if err != nil {
				return classify(err)
			}
			_, err = fmt.Fprint(app.stdout, doc)

			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := app.configDir
			if dir == "" {
				var err error
				if dir, err = config.Dir(); err != nil {
					return classify(err)
				}
			}
			_, err := fmt.Fprintln(app.stdout, filepath.Join(dir, config.ConfigFileName+".yaml"))

			return err
		},
	})

	return cfgCmd
}
