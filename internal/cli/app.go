// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hill/hill"
	"github.com/katalvlaran/hill/internal/config"
)

type (
	// App wires the streams, logger and resolved configuration shared by
	// every command handler.
	App struct {
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
		logger *log.Logger

		configDir string
		cfgFile   string
		cfg       *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with the process streams.
	Dependencies struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// ConfigDir overrides the config search directory (tests).
		ConfigDir string
	}
)

// NewApp builds an App from deps.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		stdin:     deps.Stdin,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		logger:    newLogger(deps.Stderr),
		configDir: deps.ConfigDir,
		cfg:       config.DefaultConfig(),
	}
}

// newLogger returns the driver logger; the level is raised by --verbose.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  log.InfoLevel,
	})
}

// loadConfig resolves configuration for cmd; flags explicitly set on the
// command line take precedence over env and file values.
func (a *App) loadConfig(cmd *cobra.Command) error {
	cfg, path, err := config.Load(config.LoadOptions{
		ConfigFilePath: a.cfgFile,
		ConfigDir:      a.configDir,
		Flags:          cmd.Flags(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	a.logger.Debug("configuration resolved", "file", path, "dim", cfg.Dim, "pad", cfg.Pad, "workers", cfg.Workers)

	return nil
}

// options maps the resolved configuration onto cipher options.
func (a *App) options() []hill.Option {
	return []hill.Option{
		hill.WithPadLetter(a.cfg.PadRune()),
		hill.WithStripPadding(a.cfg.StripPadding),
	}
}

// newCipher prepares a Cipher from the configured key and dimension.
func (a *App) newCipher() (*hill.Cipher, error) {
	if a.cfg.Key == "" {
		return nil, ErrMissingKey
	}
	c, err := hill.New(a.cfg.Key, a.cfg.Dim, a.options()...)
	if err != nil {
		return nil, err
	}
	if !c.Invertible() {
		a.logger.Debug("key is encrypt-only", "dim", c.Dim())
	}

	return c, nil
}

// readText joins args, or reads all of stdin when there are none.
func (a *App) readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}
