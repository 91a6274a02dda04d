package config

import (
	"os"
	"strconv"
	"strings"

	"habitlens/internal"
	"habitlens/internal/errors"
)

// Dropout denominators accepted by DROPOUT_DENOMINATOR
const (
	DropoutOverKnown = "known"
	DropoutOverAll   = "all"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Analytics AnalyticsConfig
	Log       LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds dataset source settings
type DataConfig struct {
	File  string
	Sheet string
}

// AnalyticsConfig holds pipeline settings
type AnalyticsConfig struct {
	DropoutDenominator string
	ParallelBuilders   bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Analytics: *loadAnalyticsConfig(),
		Log:       LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port: getEnvOrDefault("PORT", "8050"),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File:  getEnvOrDefault("DATA_FILE", "enhanced_student_habits_performance_dataset.csv"),
		Sheet: getEnvOrDefault("DATA_SHEET", "Sheet1"),
	}
}

func loadAnalyticsConfig() *AnalyticsConfig {
	return &AnalyticsConfig{
		DropoutDenominator: strings.ToLower(getEnvOrDefault("DROPOUT_DENOMINATOR", DropoutOverKnown)),
		ParallelBuilders:   getEnvBoolOrDefault("PARALLEL_BUILDERS", false),
	}
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + strconv.Quote(config.Server.Port))
	}
	switch config.Analytics.DropoutDenominator {
	case DropoutOverKnown, DropoutOverAll:
	default:
		return errors.ConfigInvalid("DROPOUT_DENOMINATOR must be \"known\" or \"all\"")
	}
	if _, ok := internal.ParseLogLevel(config.Log.Level); !ok {
		return errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
