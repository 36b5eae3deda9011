package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be positive")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}
	if c.RateLimit.APIPerSecond <= 0 || c.RateLimit.APIBurst <= 0 {
		return fmt.Errorf("rate_limit.api_per_second and api_burst must be > 0")
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Scheduler.Enabled {
		if err := c.Scheduler.validate(); err != nil {
			return fmt.Errorf("scheduler: %w", err)
		}
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case "local":
		if s.LocalDir == "" {
			return fmt.Errorf("local_dir is required for the local driver")
		}
	case "s3":
		if s.S3Bucket == "" {
			return fmt.Errorf("s3_bucket is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want local or s3)", s.Driver)
	}
	return nil
}

func (s *SchedulerConfig) validate() error {
	specs := map[string]string{
		"freshness":     s.Freshness,
		"alerts":        s.Alerts,
		"achievements":  s.Achievements,
		"token_cleanup": s.TokenCleanup,
	}
	for name, spec := range specs {
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("%s: invalid cron spec %q: %w", name, spec, err)
		}
	}
	return nil
}
