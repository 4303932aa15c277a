package config

import (
	"time"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study/srs"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	SRS       SRSConfig       `yaml:"srs"`
	Study     StudyConfig     `yaml:"study"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-ID"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig selects and configures the card store.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SQLitePath      string        `yaml:"sqlite_path"        env:"DATABASE_SQLITE_PATH"        env-default:"./langbridge.db"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds bearer token settings. Tokens are issued by an external identity provider
// sharing the secret; the token command mints them for local use.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"langbridge"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds scheduler constants.
type SRSConfig struct {
	HardMultiplier    float64 `yaml:"hard_multiplier"     env:"SRS_HARD_MULTIPLIER"     env-default:"1.2"`
	GoodMultiplier    float64 `yaml:"good_multiplier"     env:"SRS_GOOD_MULTIPLIER"     env-default:"2.0"`
	EasyMultiplier    float64 `yaml:"easy_multiplier"     env:"SRS_EASY_MULTIPLIER"     env-default:"2.5"`
	FirstGoodInterval int     `yaml:"first_good_interval" env:"SRS_FIRST_GOOD_INTERVAL" env-default:"1"`
	FirstEasyInterval int     `yaml:"first_easy_interval" env:"SRS_FIRST_EASY_INTERVAL" env-default:"2"`
	MaxIntervalDays   int     `yaml:"max_interval_days"   env:"SRS_MAX_INTERVAL"        env-default:"36500"`
}

// Parameters converts the config section into scheduler parameters.
func (s SRSConfig) Parameters() srs.Parameters {
	return srs.Parameters{
		HardMultiplier:    s.HardMultiplier,
		GoodMultiplier:    s.GoodMultiplier,
		EasyMultiplier:    s.EasyMultiplier,
		FirstGoodInterval: s.FirstGoodInterval,
		FirstEasyInterval: s.FirstEasyInterval,
		MaxIntervalDays:   s.MaxIntervalDays,
	}
}

// StudyConfig holds review session settings.
type StudyConfig struct {
	SessionTTL  time.Duration `yaml:"session_ttl"  env:"STUDY_SESSION_TTL"  env-default:"30m"`
	MaxSessions int           `yaml:"max_sessions" env:"STUDY_MAX_SESSIONS" env-default:"10000"`
	QueueLimit  int           `yaml:"queue_limit"  env:"STUDY_QUEUE_LIMIT"  env-default:"500"`
}

// RateLimitConfig holds per-client request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"         env-default:"300"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"       env-default:"60"`
	IdleTTL           time.Duration `yaml:"idle_ttl"            env:"RATE_LIMIT_IDLE_TTL"    env-default:"10m"`
	MaxClients        int           `yaml:"max_clients"         env:"RATE_LIMIT_MAX_CLIENTS" env-default:"50000"`
}
