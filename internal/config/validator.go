package config

import (
	"fmt"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidateStatic checks everything that can be verified without touching the
// network. A missing mailer API key is deliberately not an error here: the
// service must boot and answer NOT_CONFIGURED per request instead.
func ValidateStatic(cfg *Config) error {
	var errs []error

	if err := validateServer(cfg.Server); err != nil {
		errs = append(errs, err)
	}

	if err := validateQuota(cfg); err != nil {
		errs = append(errs, err)
	}

	if err := validateRateLimit(cfg.RateLimit); err != nil {
		errs = append(errs, err)
	}

	if err := validateVitals(cfg.Vitals); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errs)
	}

	return nil
}

func validateServer(cfg ServerConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return &ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", cfg.Port),
		}
	}

	if cfg.ReadTimeoutSeconds <= 0 {
		return &ValidationError{
			Field:   "server.read_timeout_seconds",
			Message: "read timeout must be positive",
		}
	}

	if cfg.WriteTimeoutSeconds <= 0 {
		return &ValidationError{
			Field:   "server.write_timeout_seconds",
			Message: "write timeout must be positive",
		}
	}

	return nil
}

func validateQuota(cfg *Config) error {
	if cfg.Quota.Limit <= 0 {
		return &ValidationError{
			Field:   "quota.limit",
			Message: "limit must be positive",
		}
	}

	if cfg.Quota.WindowSeconds <= 0 {
		return &ValidationError{
			Field:   "quota.window_seconds",
			Message: "window must be positive",
		}
	}

	switch cfg.Quota.Store {
	case "memory":
	case "redis":
		if cfg.Database.Redis.Host == "" {
			return &ValidationError{
				Field:   "database.redis.host",
				Message: "redis host is required when quota.store is redis",
			}
		}
	default:
		return &ValidationError{
			Field:   "quota.store",
			Message: fmt.Sprintf("unknown quota store: %s (supported: memory, redis)", cfg.Quota.Store),
		}
	}

	return nil
}

func validateRateLimit(cfg RateLimitConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if cfg.RPS <= 0 {
		return &ValidationError{
			Field:   "rate_limit.rps",
			Message: "rps must be positive when rate limiting is enabled",
		}
	}

	if cfg.Burst <= 0 {
		return &ValidationError{
			Field:   "rate_limit.burst",
			Message: "burst must be positive when rate limiting is enabled",
		}
	}

	return nil
}

func validateVitals(cfg VitalsConfig) error {
	if cfg.Enabled && cfg.File == "" {
		return &ValidationError{
			Field:   "vitals.file",
			Message: "file path is required when vitals collection is enabled",
		}
	}

	return nil
}
