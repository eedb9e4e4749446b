package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides (STYLECFG_CHECK_WORKERS, ...)
const EnvPrefix = "STYLECFG"

// LoadWithViper loads configuration from file, environment, and defaults
// through v, which carries the CLI flag bindings
func LoadWithViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Config file settings; an explicit SetConfigFile takes precedence
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("manifest.path", "")
	v.SetDefault("manifest.dir", DefaultManifestDir)
	v.SetDefault("manifest.format", DefaultManifestFormat)

	v.SetDefault("check.workers", DefaultWorkers)
	v.SetDefault("check.progress", DefaultProgress)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
