// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"

	"launchpad/internal/catalog"
)

// Config holds application configuration values loaded from file or
// environment variables.
type Config struct {
	SeedFile string `mapstructure:"SEED_FILE"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// LocalCities is the host-provided city set matched by the "local"
	// location filter token.
	LocalCities []string `mapstructure:"LOCAL_CITIES"`

	FundingMin float64 `mapstructure:"FUNDING_MIN"`
	FundingMax float64 `mapstructure:"FUNDING_MAX"`

	TeamSizeBuckets []catalog.SizeBucket `mapstructure:"TEAM_SIZE_BUCKETS"`
}

// LoadConfig loads application configuration from file and environment
// variables.
func LoadConfig() *Config {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) {
			log.Println("Config file not found; using environment variables and defaults")
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	}

	// Set default values
	viper.SetDefault("SEED_FILE", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOCAL_CITIES", []string{"San Francisco, CA", "Boston, MA", "New York, NY"})
	viper.SetDefault("FUNDING_MIN", 0.0)
	viper.SetDefault("FUNDING_MAX", 2_000_000.0)
	viper.SetDefault("TEAM_SIZE_BUCKETS", DefaultTeamSizeBuckets())

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	return &config
}

// DefaultTeamSizeBuckets returns the named intervals offered by the
// team-size filter.
func DefaultTeamSizeBuckets() []catalog.SizeBucket {
	return []catalog.SizeBucket{
		{ID: "solo", Label: "1-5 people", Min: 1, Max: 5},
		{ID: "small", Label: "6-15 people", Min: 6, Max: 15},
		{ID: "medium", Label: "16-50 people", Min: 16, Max: 50},
		{ID: "large", Label: "51+ people", Min: 51, Max: 1 << 30},
	}
}
