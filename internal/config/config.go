package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/wheelibin/berlinuhr/internal/constants"
)

const (
	KeyLogLevel      = "logLevel"
	KeyLogFile       = "logFile"
	KeyLineSeparator = "lineSeparator"
	KeyWorkers       = "workers"
)

type Config struct {
	LogLevel      string `mapstructure:"logLevel"`
	LogFile       string `mapstructure:"logFile"`
	LineSeparator string `mapstructure:"lineSeparator"`
	Workers       int    `mapstructure:"workers"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLineSeparator, constants.DefaultLineSeparator)
	v.SetDefault(KeyWorkers, constants.DefaultWorkers)
}

// ReadConfig loads config.json from the usual places, or from configFile when it is set.
// A missing config file is not an error, the defaults are used instead.
func ReadConfig(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("berlinuhr")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath("/etc/berlinuhr/")
		v.AddConfigPath("$HOME/.config/berlinuhr/")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", KeyWorkers, cfg.Workers)
	}

	return &cfg, nil
}
