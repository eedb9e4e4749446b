package config

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/stylecfg/internal/manifest"
)

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Check    CheckConfig    `mapstructure:"check" yaml:"check"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig locates the manifest and selects how it is printed
type ManifestConfig struct {
	// Path of the manifest; empty means discovery in Dir
	Path   string `mapstructure:"path" yaml:"path"`
	Dir    string `mapstructure:"dir" yaml:"dir"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CheckConfig contains batch validation settings
type CheckConfig struct {
	Workers  int  `mapstructure:"workers" yaml:"workers"`
	Progress bool `mapstructure:"progress" yaml:"progress"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, repairing out-of-range values
func (c *Config) Validate() error {
	if c.Check.Workers < 1 {
		c.Check.Workers = DefaultWorkers
	}
	if c.Check.Workers > MaxWorkers {
		c.Check.Workers = MaxWorkers
	}
	if c.Manifest.Dir == "" {
		c.Manifest.Dir = DefaultManifestDir
	}
	if c.Manifest.Format == "" {
		c.Manifest.Format = DefaultManifestFormat
	}
	if _, err := manifest.ParseFormat(c.Manifest.Format); err != nil {
		return fmt.Errorf("invalid manifest.format: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "pretty", "json":
		c.Logging.Format = strings.ToLower(c.Logging.Format)
	default:
		c.Logging.Format = DefaultLogFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	return nil
}

// ManifestFormat returns the configured output format
func (c *Config) ManifestFormat() manifest.Format {
	f, err := manifest.ParseFormat(c.Manifest.Format)
	if err != nil {
		return manifest.FormatYAML
	}
	return f
}
