package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Manifest defaults
	DefaultManifestDir    = "."
	DefaultManifestFormat = "yaml"

	// Check defaults
	DefaultWorkers  = 4
	MaxWorkers      = 64
	DefaultProgress = true

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stylecfg"
	}
	return filepath.Join(home, ".stylecfg")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{
			Path:   "",
			Dir:    DefaultManifestDir,
			Format: DefaultManifestFormat,
		},
		Check: CheckConfig{
			Workers:  DefaultWorkers,
			Progress: DefaultProgress,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
