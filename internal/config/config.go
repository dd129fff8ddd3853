// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every decoding or validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls presentation only; the menu contract does not depend on it.
type Config struct {
	Color      bool   `yaml:"color"`
	Verbose    bool   `yaml:"verbose"`
	Banner     bool   `yaml:"banner"`
	LogFile    string `yaml:"log_file"`
	NotesStyle string `yaml:"notes_style"`
	NotesWidth int    `yaml:"notes_width"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		Color:      true,
		Banner:     true,
		NotesStyle: "dark",
		NotesWidth: 80,
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.load %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var notesStyles = map[string]bool{
	"dark":  true,
	"light": true,
	"notty": true,
	"ascii": true,
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.NotesWidth < 0 {
		return fmt.Errorf("%w: notes_width must be >= 0, got %d", ErrInvalidConfig, c.NotesWidth)
	}
	if c.NotesStyle != "" && !notesStyles[c.NotesStyle] {
		return fmt.Errorf("%w: unknown notes_style %q", ErrInvalidConfig, c.NotesStyle)
	}
	return nil
}
