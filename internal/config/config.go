// Package config reads the optional ~/.permcalc/config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config represents ~/.permcalc/config.yaml.
type Config struct {
	// DescriptionsCSV points at the permission-set reference CSV. Empty
	// means "resolve next to the executable".
	DescriptionsCSV string `yaml:"descriptions_csv,omitempty"`
	// NoColor disables terminal styling in non-TUI output.
	NoColor bool `yaml:"no_color,omitempty"`
}

// Default returns the zero configuration used when no config file exists.
func Default() Config {
	return Config{}
}

// Parse parses config.yaml bytes into a Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// LoadFile reads and parses the config file at path. A missing file is not
// an error; it yields the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}
