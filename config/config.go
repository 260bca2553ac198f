package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	DefaultDatabasePath = "/tmp/test.db"
	DefaultPort         = 3000
)

type Config struct {
	// relational store; when empty the SQLite file at DatabasePath is used
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"/tmp/test.db"`

	// connection pool
	MaxOpenConns int `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns int `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`

	Port int `env:"PORT" envDefault:"3000"`

	// honour X-Forwarded-For / X-Real-IP; only behind a proxy that overwrites them
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`

	// server timeouts
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// comma separated, "*" allows any origin
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	RateLimitEnabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// UsesPostgres reports whether a DATABASE_URL was supplied.
func (c Config) UsesPostgres() bool {
	return c.DatabaseURL != ""
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// AllowedOrigins splits CORSAllowedOrigins into a slice, dropping blanks.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme that some hosting
// providers still hand out.
func NormalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration from environment: %w", err)
	}

	cfg.DatabaseURL = NormalizeDatabaseURL(strings.TrimSpace(cfg.DatabaseURL))
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = DefaultDatabasePath
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.RateLimitEnabled && (cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0) {
		return Config{}, fmt.Errorf("rate limiting enabled with non-positive RATE_LIMIT_RPS %.2f or RATE_LIMIT_BURST %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return cfg, nil
}
