package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func LoadConfig(configFile string) (*Config, error) {
	viper.Reset()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := ValidateStatic(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("quota.store", "memory")
	viper.SetDefault("quota.limit", 5)
	viper.SetDefault("quota.window_seconds", 3600)
	viper.SetDefault("quota.cleanup_interval_seconds", 600)
	viper.SetDefault("mailer.timeout_seconds", 10)
	viper.SetDefault("vitals.file", "vitals.log")
}

func bindEnvVariables() {
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout_seconds", "SERVER_READ_TIMEOUT_SECONDS")
	viper.BindEnv("server.write_timeout_seconds", "SERVER_WRITE_TIMEOUT_SECONDS")

	viper.BindEnv("logging.level", "LOGGING_LEVEL")
	viper.BindEnv("logging.format", "LOGGING_FORMAT")

	viper.BindEnv("database.redis.host", "DATABASE_REDIS_HOST")
	viper.BindEnv("database.redis.port", "DATABASE_REDIS_PORT")
	viper.BindEnv("database.redis.password", "DATABASE_REDIS_PASSWORD")
	viper.BindEnv("database.redis.db", "DATABASE_REDIS_DB")

	viper.BindEnv("quota.store", "QUOTA_STORE")
	viper.BindEnv("quota.limit", "QUOTA_LIMIT")
	viper.BindEnv("quota.window_seconds", "QUOTA_WINDOW_SECONDS")

	// RESEND_API_KEY is the name the provider dashboard hands out; the
	// MAILER_ prefixed variant keeps naming consistent with the rest.
	viper.BindEnv("mailer.api_key", "MAILER_API_KEY", "RESEND_API_KEY")
	viper.BindEnv("mailer.from", "MAILER_FROM")
	viper.BindEnv("mailer.endpoint", "MAILER_ENDPOINT")

	viper.BindEnv("vitals.enabled", "VITALS_ENABLED")
	viper.BindEnv("vitals.file", "VITALS_FILE")
}

func applyEnvOverrides(cfg *Config) {
	if key := viper.GetString("RESEND_API_KEY"); key != "" && cfg.Mailer.APIKey == "" {
		cfg.Mailer.APIKey = key
	}
}
