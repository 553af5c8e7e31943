// Package config provides settings for the syllable filter.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixed file names. They are deliberately not part of Config.
const (
	InputFile    = "words.txt"
	OutputFile   = "filtered_output.json"
	SettingsFile = "syllablefilter.yaml"
)

// Configuration validation errors.
var (
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidPreviewLimit = errors.New("report.preview_limit must be non-negative")
)

// Config represents the optional settings file.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ReportConfig controls the preview printed after a successful run.
type ReportConfig struct {
	Preview      bool `yaml:"preview"`
	PreviewLimit int  `yaml:"preview_limit"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Report:  ReportConfig{Preview: false, PreviewLimit: 20},
	}
}

// LoadConfig loads configuration from YAML file. Keys absent from the
// file keep their default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOptional loads filepath if it exists and returns defaults otherwise.
// The returned bool reports whether the file was found.
func LoadOptional(filepath string) (*Config, bool, error) {
	cfg, err := LoadConfig(filepath)
	if err == nil {
		return cfg, true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), false, nil
	}

	return DefaultConfig(), true, err
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Report.PreviewLimit < 0 {
		return ErrInvalidPreviewLimit
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{LogLevel: %s, Preview: %t, PreviewLimit: %d}",
		c.Logging.Level,
		c.Report.Preview,
		c.Report.PreviewLimit,
	)
}
