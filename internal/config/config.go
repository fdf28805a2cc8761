// Package config loads server settings from the environment with command-line overrides.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingDSN is returned when no database connection string is configured.
	ErrMissingDSN = errors.New("database connection string is required (DATABASE_URL or -dsn)")
	// ErrMissingJWTKey is returned when no signing secret is configured. There is no fallback.
	ErrMissingJWTKey = errors.New("jwt signing key is required (JWT_SECRET or -jwt-key)")
)

// Config holds every runtime setting of the server.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":4000"`
	DSN             string        `env:"DATABASE_URL"`
	DBMaxConns      int           `env:"DB_MAX_CONNS" envDefault:"10"`
	JWTKey          string        `env:"JWT_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`
	CORSOrigin      string        `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
	HealthAddr      string        `env:"HEALTH_ADDR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Dev             bool          `env:"DEV"`
}

// Load reads the process environment and then applies flags from args (without the program name).
func Load(args []string) (*Config, error) {
	return LoadFrom(args, environ())
}

// LoadFrom is Load with an explicit environment, for tests.
func LoadFrom(args []string, environment map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Flags default to the env-derived values, so flags win when both are set.
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.DSN, "dsn", cfg.DSN, "PostgreSQL DSN")
	fs.IntVar(&cfg.DBMaxConns, "db-max-conns", cfg.DBMaxConns, "max open database connections")
	fs.StringVar(&cfg.JWTKey, "jwt-key", cfg.JWTKey, "HS256 signing key (required)")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "access token TTL")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt work factor")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", cfg.CORSOrigin, "allowed CORS origin")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address (empty disables)")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "development logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings and value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DSN) == "" {
		return ErrMissingDSN
	}
	if c.JWTKey == "" {
		return ErrMissingJWTKey
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("db max conns must be positive, got %d", c.DBMaxConns)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %v", c.TokenTTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %v", c.ShutdownTimeout)
	}
	return nil
}

func environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			out[k] = v
		}
	}
	return out
}
