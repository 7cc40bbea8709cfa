// Package config handles runtime configuration for the storefront server:
// defaults, environment overlay, and command-line flags.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Shipped development defaults. The placeholder DSN doubles as the sentinel
// that keeps a deployment without a database in demo mode; the default hash
// verifies the password "admin123".
const (
	DefaultAddr              = ":8080"
	DefaultSecretKey         = "default-jwt-secret-change-in-production"
	DefaultAdminPasswordHash = "$2b$10$uh8OTKJhC9X5A7s5RoD7kuRJtQeb8Qbqimv4q65GK7CXge5NR2ucW"
	PlaceholderDSN           = "postgres://placeholder"
)

// Config holds runtime settings for the boutique server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing admin JWTs (HS256).
//   - AdminPasswordHash: bcrypt hash of the admin password.
//   - TokenValidity: admin token/session lifetime.
//   - DatabaseDSN: elevated-tier PostgreSQL DSN (pgx), used for writes.
//   - DatabaseReadDSN: restricted-tier DSN for public catalogue reads;
//     falls back to DatabaseDSN when unset.
//   - DataDir: optional directory with products.json/config.json for
//     file-backed demo deployments.
//   - S3*: settings for the S3-compatible media storage backend.
type Config struct {
	Addr              string        `env:"SHOP_ADDR"`
	SecretKey         string        `env:"JWT_SECRET"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	TokenValidity     time.Duration `env:"ADMIN_TOKEN_VALIDITY"`
	DatabaseDSN       string        `env:"DATABASE_URL"`
	DatabaseReadDSN   string        `env:"DATABASE_READ_URL"`
	DataDir           string        `env:"SHOP_DATA_DIR"`
	S3RootUser        string        `env:"S3_ROOT_USER"`
	S3RootPassword    string        `env:"S3_ROOT_PASSWORD"`
	S3Bucket          string        `env:"S3_BUCKET"`
	S3Region          string        `env:"S3_REGION"`
	S3BaseEndpoint    string        `env:"S3_BASE_ENDPOINT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: these values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = DefaultAddr
	c.SecretKey = DefaultSecretKey
	c.AdminPasswordHash = DefaultAdminPasswordHash
	c.TokenValidity = 24 * time.Hour
	c.DatabaseDSN = PlaceholderDSN
	c.S3Bucket = "media"
	c.S3Region = "us-east-1"
}

// FallbackMode reports whether the live store is unconfigured: the elevated
// DSN is absent or still the placeholder sentinel. It is a pure function of
// configuration, so the decision is fixed for the process lifetime.
func (c *Config) FallbackMode() bool {
	return c.DatabaseDSN == "" || c.DatabaseDSN == PlaceholderDSN
}

// ReadDSN returns the restricted-tier DSN, falling back to the elevated one.
func (c *Config) ReadDSN() string {
	if c.DatabaseReadDSN != "" && c.DatabaseReadDSN != PlaceholderDSN {
		return c.DatabaseReadDSN
	}
	return c.DatabaseDSN
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
