// Package config holds run configuration for the CLI
package config

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration settings
type Config struct {
	// Ingestion settings
	Patterns       []string
	Cwd            string
	Extensions     []string
	Ignore         bool
	IgnorePath     string
	IgnorePatterns []string

	// Logging settings
	LogLevel  string
	Quiet     bool
	NoColor   bool
	UseColors bool

	// Output settings
	JSONOutput bool
	ShowFailed bool
}

// Default returns a Config with default values, before flag and config
// file overrides are applied.
func Default() *Config {
	return &Config{
		Cwd:      ".",
		Ignore:   true,
		LogLevel: "info",
	}
}

// DetectColors reports whether colored output should be used
func DetectColors(noColor bool) bool {
	return !noColor && isatty.IsTerminal(os.Stderr.Fd())
}

// FileConfig is the YAML shape of an on-disk configuration file.
// Pointer fields distinguish "absent" from explicit false.
type FileConfig struct {
	Extensions     []string `yaml:"extensions"`
	Ignore         *bool    `yaml:"ignore"`
	IgnorePath     string   `yaml:"ignorePath"`
	IgnorePatterns []string `yaml:"ignorePatterns"`
}

// LoadFile reads and decodes a YAML configuration file
func LoadFile(path string) (*FileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read config file '%s': %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return nil, fmt.Errorf("config: failed to parse config file '%s': %w", path, err)
	}
	return &fc, nil
}

// Merge applies file values to the config. Fields the caller marked as
// explicitly set on the command line keep their flag value.
func (c *Config) Merge(fc *FileConfig, flagChanged func(name string) bool) {
	if fc == nil {
		return
	}
	if len(fc.Extensions) > 0 && !flagChanged("ext") {
		c.Extensions = fc.Extensions
	}
	if fc.Ignore != nil && !flagChanged("no-ignore") {
		c.Ignore = *fc.Ignore
	}
	if fc.IgnorePath != "" && !flagChanged("ignore-path") {
		c.IgnorePath = fc.IgnorePath
	}
	if len(fc.IgnorePatterns) > 0 && !flagChanged("ignore-pattern") {
		c.IgnorePatterns = fc.IgnorePatterns
	}
}
