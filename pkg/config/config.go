// Package config loads optional logmerge settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"logmerge/pkg/merge"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no config path is given.
const DefaultFileName = "logmerge.yaml"

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultTimestampField = merge.DefaultTimestampField
	DefaultOutputName     = "merge_logs.jsonl"
)

// Config holds settings that may also be given as command-line flags.
type Config struct {
	TimestampField string `yaml:"timestampField,omitempty"`
	OutputName     string `yaml:"outputName,omitempty"`
	Force          bool   `yaml:"force,omitempty"`
	Debug          bool   `yaml:"debug,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TimestampField: DefaultTimestampField,
		OutputName:     DefaultOutputName,
	}
}

// Load reads the config at path. An empty path means DefaultFileName in the
// working directory, and a missing default file yields Default() rather
// than an error. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings can be used for a run.
func (c *Config) Validate() error {
	if c.TimestampField == "" {
		return errors.New("timestampField must not be empty")
	}
	if c.OutputName == "" || c.OutputName == "." || c.OutputName == ".." ||
		filepath.Base(c.OutputName) != c.OutputName {
		return fmt.Errorf("outputName %q must be a plain file name", c.OutputName)
	}
	return nil
}
