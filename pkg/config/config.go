// Package config loads traitnet configuration from file, flags, and
// environment via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Layout LayoutConfig `mapstructure:"layout"`
	Bundle BundleConfig `mapstructure:"bundle"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LayoutConfig holds the grid layout origin and spacing, in pixels.
type LayoutConfig struct {
	OriginX  int `mapstructure:"origin_x"`
	OriginY  int `mapstructure:"origin_y"`
	SpacingX int `mapstructure:"spacing_x"`
	SpacingY int `mapstructure:"spacing_y"`
}

// BundleConfig holds cleaned-bundle output options.
type BundleConfig struct {
	// Parquet additionally mirrors the cleaned tables as Parquet files.
	Parquet bool `mapstructure:"parquet"`
}

// Load decodes configuration from viper's current state.
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("log.level", "info")

	// Grid constants carried over from the original renderer.
	viper.SetDefault("layout.origin_x", 100)
	viper.SetDefault("layout.origin_y", 100)
	viper.SetDefault("layout.spacing_x", 220)
	viper.SetDefault("layout.spacing_y", 140)

	viper.SetDefault("bundle.parquet", false)
}
