/**
 * @description
 * This package handles the configuration management for the service. It uses the
 * Viper library to read configuration from environment variables, providing a
 * centralized and straightforward way to manage application settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the session service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort              string `mapstructure:"SERVER_PORT"`
	DatabaseURL             string `mapstructure:"DATABASE_URL"`
	RedisURL                string `mapstructure:"REDIS_URL"`
	RedisRateLimitPrefix    string `mapstructure:"REDIS_RATE_LIMIT_PREFIX"`
	RabbitMQURL             string `mapstructure:"RABBITMQ_URL"`
	JWTSecret               string `mapstructure:"JWT_SECRET"`
	TokenTTLHours           int    `mapstructure:"TOKEN_TTL_HOURS"`
	FreeAnalysisLimit       int    `mapstructure:"FREE_ANALYSIS_LIMIT"`
	QuotaResetSchedule      string `mapstructure:"QUOTA_RESET_SCHEDULE"`
	AnalysisRateLimitPerMin int    `mapstructure:"ANALYSIS_RATE_LIMIT_PER_MINUTE"`
	AnalysisStepDelayMs     int    `mapstructure:"ANALYSIS_STEP_DELAY_MS"`
	AnalysisSteps           int    `mapstructure:"ANALYSIS_STEPS"`
	BillingLatencyMs        int    `mapstructure:"BILLING_LATENCY_MS"`
	SnapshotQueueSize       int    `mapstructure:"SNAPSHOT_QUEUE_SIZE"`
}

// LoadConfig reads configuration from environment variables from the given path.
// It uses Viper to automatically bind environment variables to the Config struct.
func LoadConfig(path string) (config Config, err error) {
	// Tell viper the path to look for the optional .env file.
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	// Enable automatic binding of environment variables.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_RATE_LIMIT_PREFIX", "styleadvisor:rate_limit")
	viper.SetDefault("TOKEN_TTL_HOURS", 720)
	viper.SetDefault("FREE_ANALYSIS_LIMIT", 1)
	viper.SetDefault("QUOTA_RESET_SCHEDULE", "0 0 * * *")
	viper.SetDefault("ANALYSIS_RATE_LIMIT_PER_MINUTE", 10)
	viper.SetDefault("ANALYSIS_STEP_DELAY_MS", 900)
	viper.SetDefault("ANALYSIS_STEPS", 4)
	viper.SetDefault("BILLING_LATENCY_MS", 1500)
	viper.SetDefault("SNAPSHOT_QUEUE_SIZE", 256)

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("REDIS_URL")
	_ = viper.BindEnv("REDIS_RATE_LIMIT_PREFIX")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("TOKEN_TTL_HOURS")
	_ = viper.BindEnv("FREE_ANALYSIS_LIMIT")
	_ = viper.BindEnv("QUOTA_RESET_SCHEDULE")
	_ = viper.BindEnv("ANALYSIS_RATE_LIMIT_PER_MINUTE")
	_ = viper.BindEnv("ANALYSIS_STEP_DELAY_MS")
	_ = viper.BindEnv("ANALYSIS_STEPS")
	_ = viper.BindEnv("BILLING_LATENCY_MS")
	_ = viper.BindEnv("SNAPSHOT_QUEUE_SIZE")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		// If the config file is not found, we can ignore the error.
		// For other errors, we should return them.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
	}

	// Unmarshal the configuration into the Config struct.
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}
	config.RedisURL = strings.TrimSpace(config.RedisURL)
	config.RedisRateLimitPrefix = strings.TrimSpace(config.RedisRateLimitPrefix)
	if config.RedisRateLimitPrefix == "" {
		config.RedisRateLimitPrefix = "styleadvisor:rate_limit"
	}

	if config.TokenTTLHours <= 0 {
		config.TokenTTLHours = 720
	}
	if config.FreeAnalysisLimit <= 0 {
		log.Printf("level=warn component=config msg=\"non-positive free analysis limit configured; coercing to 1\" limit=%d", config.FreeAnalysisLimit)
		config.FreeAnalysisLimit = 1
	}
	if strings.TrimSpace(config.QuotaResetSchedule) == "" {
		config.QuotaResetSchedule = "0 0 * * *"
	}
	if config.AnalysisRateLimitPerMin <= 0 {
		config.AnalysisRateLimitPerMin = 10
	}
	if config.AnalysisStepDelayMs < 0 {
		config.AnalysisStepDelayMs = 0
	}
	if config.AnalysisSteps <= 0 {
		config.AnalysisSteps = 4
	}
	if config.BillingLatencyMs < 0 {
		config.BillingLatencyMs = 0
	}
	if config.SnapshotQueueSize <= 0 {
		config.SnapshotQueueSize = 256
	}

	return
}
