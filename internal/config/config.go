package config

import (
	"time"
)

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Logging        LoggingConfig        `mapstructure:"logging"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Quota          QuotaConfig          `mapstructure:"quota"`
	RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`
	Mailer         MailerConfig         `mapstructure:"mailer"`
	Spam           SpamConfig           `mapstructure:"spam"`
	Vitals         VitalsConfig         `mapstructure:"vitals"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type ServerConfig struct {
	Port                int           `mapstructure:"port"`
	ReadTimeoutSeconds  time.Duration `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds time.Duration `mapstructure:"write_timeout_seconds"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// QuotaConfig bounds accepted submissions per client address over a rolling
// window. Store is "memory" (single instance) or "redis" (shared).
type QuotaConfig struct {
	Store                  string `mapstructure:"store"`
	Limit                  int    `mapstructure:"limit"`
	WindowSeconds          int    `mapstructure:"window_seconds"`
	CleanupIntervalSeconds int    `mapstructure:"cleanup_interval_seconds"`
}

// RateLimitConfig is the coarse per-IP token bucket in front of the whole API,
// separate from the submission quota.
type RateLimitConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	RPS             float64 `mapstructure:"rps"`
	Burst           int     `mapstructure:"burst"`
	CleanupInterval int     `mapstructure:"cleanup_interval"`
	MaxAge          int     `mapstructure:"max_age"`
}

type MailerConfig struct {
	APIKey         string `mapstructure:"api_key"`
	From           string `mapstructure:"from"`
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SpamConfig lists CEL expressions evaluated against each parsed submission.
// A rule that evaluates to true is treated exactly like a honeypot hit.
type SpamConfig struct {
	Rules []string `mapstructure:"rules"`
}

type VitalsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

type CircuitBreakerConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	MaxRequests  uint32        `mapstructure:"max_requests"`
	Interval     time.Duration `mapstructure:"interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	FailureRatio float64       `mapstructure:"failure_ratio"`
	MinRequests  uint32        `mapstructure:"min_requests"`
}

func Load(configFile string) (*Config, error) {
	return LoadConfig(configFile)
}
