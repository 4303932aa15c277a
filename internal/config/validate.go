package config

import (
	"fmt"
	"strings"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.SRS.Parameters().Validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))

	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
		if d.MinConns > d.MaxConns {
			return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
		}
	case DriverSQLite:
		if d.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", d.Driver)
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, d.Driver)
	}

	return nil
}

func (s *StudyConfig) validate() error {
	if s.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %v)", s.SessionTTL)
	}
	if s.MaxSessions <= 0 {
		return fmt.Errorf("max_sessions must be > 0 (got %d)", s.MaxSessions)
	}
	if s.QueueLimit <= 0 || s.QueueLimit > domain.MaxDueLimit {
		return fmt.Errorf("queue_limit must be in [1, %d] (got %d)", domain.MaxDueLimit, s.QueueLimit)
	}
	return nil
}
