package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port)
	}

	mode := strings.ToLower(strings.TrimSpace(c.Notification.DispatchMode))
	switch mode {
	case DispatchStrict, DispatchBestEffort:
		c.Notification.DispatchMode = mode
	default:
		return fmt.Errorf("notification.dispatch_mode must be %q or %q (got %q)",
			DispatchStrict, DispatchBestEffort, c.Notification.DispatchMode)
	}

	if c.Redis.Enabled && strings.TrimSpace(c.Redis.Channel) == "" {
		return fmt.Errorf("redis.channel is required when redis is enabled")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/' (got %q)", c.Metrics.Path)
	}

	if c.Bootstrap.SeedUsers && (c.Bootstrap.AdminUsername == "" || c.Bootstrap.AdminPassword == "") {
		return fmt.Errorf("bootstrap admin credentials are required when seed_users is on")
	}

	return nil
}
