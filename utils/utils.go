package utils

import (
	"fmt"

	"github.com/deployd-project/deployd/model"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig reads config.yaml from configDir (the current directory when
// empty) and validates that the four required fields are present. A missing
// file or a missing field is an error; the caller decides whether that is
// fatal.
func LoadConfig(configDir string) (model.Config, error) {

	var config model.Config

	if configDir == "" {
		configDir = "."
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AutomaticEnv()

	v.SetDefault("packageManager", "npm")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return config, fmt.Errorf("fatal error config file: %w", err)
	}

	// Unmarshal config into Config struct
	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
