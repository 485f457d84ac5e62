// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hill",
		Short: "Encrypt and decrypt text with the Hill cipher",
		Long: TitleStyle.Render("hill") + LabelStyle.Render(" - the Hill cipher over A-Z") + `

Letters are mapped to 0..25 and encrypted in blocks of m with an m×m key
matrix taken row by row from the key letters. Decryption needs a key whose
determinant is coprime to 26.

This is a classical cipher for teaching. It is NOT secure.

` + LabelStyle.Render("Examples:") + `
  hill encrypt --key LDIH JULY            prints DELW
  hill decrypt --key GYBNQURVK --dim 3 PWY  prints ACT
  hill inspect --key LDIH
  hill demo --interactive
  hill batch --mode decrypt --in lines.txt --workers 8
  hill config show
  hill about`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return classify(app.loadConfig(cmd))
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.StringVar(&app.cfgFile, "config", "", "config file (default is <user config dir>/hill/config.yaml)")
	pf.StringP("key", "k", "", "key letters, m² of them (env HILL_KEY)")
	pf.IntP("dim", "m", 2, "block size m (env HILL_DIM)")
	pf.String("pad", "X", "pad letter for the final block")

	rootCmd.AddCommand(newEncryptCommand(app))
	rootCmd.AddCommand(newDecryptCommand(app))
	rootCmd.AddCommand(newInspectCommand(app))
	rootCmd.AddCommand(newDemoCommand(app))
	rootCmd.AddCommand(newBatchCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newAboutCommand(app))

	return rootCmd
}

// Execute runs the CLI with process streams and returns the exit code.
// This is called by main.main().
func Execute(ctx context.Context) int {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return ExitFailure
	}

	return ExitOK
}
