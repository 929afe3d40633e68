// Package config provides configuration loading and management for memberlint.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete memberlint configuration.
type Config struct {
	Lint   LintConfig   `yaml:"lint"`
	Output OutputConfig `yaml:"output"`
}

// LintConfig configures the ordering check.
type LintConfig struct {
	// Order is the canonical group order as group keys (e.g. "public-fields",
	// "constructors"). Empty means the builtin default order. Groups omitted
	// from the order are excluded from checking entirely.
	Order []string `yaml:"order"`

	// Alphabetize enables the within-group alphabetical check.
	Alphabetize bool `yaml:"alphabetize"`

	// Include is the list of glob patterns selecting files to check
	// (empty = all supported files under the targets).
	Include []string `yaml:"include"`

	// Exclude is the list of glob patterns for files to skip, matched
	// against paths relative to the target root.
	Exclude []string `yaml:"exclude"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Order:       nil, // Builtin default order
			Alphabetize: false,
			Include:     nil, // All supported files
			Exclude:     nil,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Validate checks that the configuration is valid. Group keys in Lint.Order
// are validated by the lint package when the order is built, so that unknown
// groups surface as a configuration error before any member is checked.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q", FormatText, FormatJSON)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Lint.Order) > 0 {
		c.Lint.Order = other.Lint.Order
	}
	if other.Lint.Alphabetize {
		c.Lint.Alphabetize = true
	}
	if len(other.Lint.Include) > 0 {
		c.Lint.Include = other.Lint.Include
	}
	if len(other.Lint.Exclude) > 0 {
		c.Lint.Exclude = other.Lint.Exclude
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
}
