// Package config loads recipelang CLI configuration from a TOML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds user preferences for the rl CLI. All fields are
// optional; zero values fall back to the defaults below.
type Config struct {
	// Theme is the CLI color scheme: "auto", "dark", or "light".
	Theme string `toml:"theme"`

	// Prompt is the interactive shell prompt.
	Prompt string `toml:"prompt"`

	// StopOnError makes batch runs halt at the first bad line instead
	// of reporting it and continuing.
	StopOnError bool `toml:"stop_on_error"`

	// Transcripts records every accepted shell statement to a
	// replayable .rl file under the config directory.
	Transcripts bool `toml:"transcripts"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:  "auto",
		Prompt: "RecipeLang> ",
	}
}

// Path returns the config file location:
// <UserConfigDir>/recipelang/config.toml.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving config directory")
	}
	return filepath.Join(base, "recipelang", "config.toml"), nil
}

// Load reads the config file, returning defaults when it does not
// exist. A malformed file is an error: silently ignoring a typo'd
// config is worse than failing loudly.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a specific config file, filling unset keys with
// defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), errors.Wrapf(err, "parsing config %s", path)
	}

	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	if cfg.Theme == "" {
		cfg.Theme = Default().Theme
	}

	return cfg, nil
}
