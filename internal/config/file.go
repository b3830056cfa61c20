package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// parseFile reads a settings file with viper. The format is derived from the
// file extension (yaml, json, toml, ...).
func parseFile(path string) (*StructuredConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding settings file: %w", err)
	}

	return cfg, nil
}
