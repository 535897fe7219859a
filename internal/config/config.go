// SPDX-License-Identifier: MIT

// Package config loads bauer's YAML configuration and batch input files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded file fails validation.
var ErrInvalid = errors.New("config: invalid")

// Formats lists the accepted output formats.
var Formats = []string{"text", "json"}

// Config holds settings shared by every subcommand. Flags override it.
type Config struct {
	// Workers bounds batch concurrency; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Window is the Toeplitz window for completions; 0 means n+1.
	Window int `yaml:"window"`
	// Validate enables eager domain checks in the Schur kernel.
	Validate bool `yaml:"validate"`
	// Format is the output format, "text" or "json".
	Format string `yaml:"format"`
	// Log configures the zap logger.
	Log Log `yaml:"log"`
}

// Log configures logging.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Validate: true,
		Format:   "text",
		Log:      Log{Level: "warn"},
	}
}

// Load reads path over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := decodeStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Check(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Check validates ranges and enumerations.
func (c Config) Check() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if c.Window < 0 {
		return fmt.Errorf("%w: window must be >= 0, got %d", ErrInvalid, c.Window)
	}
	if !ValidFormat(c.Format) {
		return fmt.Errorf("%w: format %q must be one of %v", ErrInvalid, c.Format, Formats)
	}

	return nil
}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}

	return false
}

// decodeStrict decodes YAML with unknown-field rejection. An empty document
// leaves out untouched.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
