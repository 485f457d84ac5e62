// SPDX-License-Identifier: MIT

// Package config loads driver settings for the hill CLI.
//
// Sources, lowest precedence first:
//   - built-in defaults (dim=2, pad=X, workers=4),
//   - a config file (--config, or <user config dir>/hill/config.{yaml,toml,json}),
//   - HILL_* environment variables (HILL_KEY, HILL_DIM, ...),
//   - command-line flags that were explicitly set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/hill/hill"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName names the config directory and the env prefix.
	AppName = "hill"
	// ConfigFileName is the base name searched in the config directory.
	ConfigFileName = "config"
	// EnvPrefix prefixes every environment override (HILL_KEY, HILL_DIM).
	EnvPrefix = "HILL"
)

// Configuration keys.
const (
	KeyKey          = "key"
	KeyDim          = "dim"
	KeyPad          = "pad"
	KeyStripPadding = "strip_padding"
	KeyWorkers      = "workers"
	KeyVerbose      = "verbose"
)

var (
	// ErrConfigNotFound is returned when an explicit config path does not exist.
	ErrConfigNotFound = errors.New("config: file not found")

	// ErrInvalidConfig is returned when a loaded value is out of range.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config is the resolved driver configuration.
type Config struct {
	Key          string `mapstructure:"key" toml:"key"`
	Dim          int    `mapstructure:"dim" toml:"dim"`
	Pad          string `mapstructure:"pad" toml:"pad"`
	StripPadding bool   `mapstructure:"strip_padding" toml:"strip_padding"`
	Workers      int    `mapstructure:"workers" toml:"workers"`
	Verbose      bool   `mapstructure:"verbose" toml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Dim:          2,
		Pad:          "X",
		StripPadding: true,
		Workers:      4,
	}
}

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// ConfigFilePath, when set, is used exclusively and must exist.
	ConfigFilePath string
	// ConfigDir overrides the default search directory.
	ConfigDir string
	// Flags are bound by name to the matching keys; only changed flags win.
	Flags *pflag.FlagSet
}

// flagKeys maps CLI flag names onto configuration keys.
var flagKeys = map[string]string{
	"key":           KeyKey,
	"dim":           KeyDim,
	"pad":           KeyPad,
	"strip-padding": KeyStripPadding,
	"workers":       KeyWorkers,
	"verbose":       KeyVerbose,
}

// Dir returns the default configuration directory, <user config dir>/hill.
// On Linux this honors $XDG_CONFIG_HOME.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}

	return filepath.Join(base, AppName), nil
}

// Load resolves the configuration. It returns the config and the path of the
// file that was read ("" when none was found).
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyKey, defaults.Key)
	v.SetDefault(KeyDim, defaults.Dim)
	v.SetDefault(KeyPad, defaults.Pad)
	v.SetDefault(KeyStripPadding, defaults.StripPadding)
	v.SetDefault(KeyWorkers, defaults.Workers)
	v.SetDefault(KeyVerbose, defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	resolvedPath, err := readConfigFile(v, opts)
	if err != nil {
		return nil, "", err
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err = v.BindPFlag(key, f); err != nil {
				return nil, "", fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

// readConfigFile loads the explicit file, or searches the config directory.
// A missing file in the search directory is not an error.
func readConfigFile(v *viper.Viper, opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", fmt.Errorf("%s: %w", opts.ConfigFilePath, ErrConfigNotFound)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config %s: %w", opts.ConfigFilePath, err)
		}

		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = Dir(); err != nil {
			return "", err
		}
	}
	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}

		return "", fmt.Errorf("read config in %s: %w", dir, err)
	}

	return v.ConfigFileUsed(), nil
}

// Validate checks value ranges. The key itself is validated by the cipher.
func (c *Config) Validate() error {
	if c.Dim <= 0 {
		return fmt.Errorf("dim=%d must be positive: %w", c.Dim, ErrInvalidConfig)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers=%d must be positive: %w", c.Workers, ErrInvalidConfig)
	}
	r := []rune(c.Pad)
	if len(r) != 1 || !hill.IsLetter(r[0]) {
		return fmt.Errorf("pad=%q must be one Latin letter: %w", c.Pad, ErrInvalidConfig)
	}

	return nil
}

// EncodeTOML renders c as a TOML document loadable by Load.
func (c *Config) EncodeTOML() (string, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	return string(b), nil
}

// PadRune returns the pad letter; Validate guarantees it exists.
func (c *Config) PadRune() rune {
	return []rune(c.Pad)[0]
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
