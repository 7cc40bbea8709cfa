package auth

import (
	"context"
	"time"

	"github.com/avigneron/boutique/internal/logging"
	sc "github.com/avigneron/boutique/internal/server/config"
	"github.com/avigneron/boutique/internal/server/models"
)

// Gate binds the configured credential material to the package-level
// primitives. It is stateless: no session rows are stored anywhere, a token
// stays valid until its expiry instant.
type Gate struct {
	passwordHash string
	secretKey    []byte
	validity     time.Duration
	logger       logging.Logger
}

// NewGate constructs a Gate from server config. If the password hash or the
// signing secret are still the shipped defaults, an operational warning is
// logged so a production deployment cannot ship them silently.
func NewGate(cfg *sc.Config, logger logging.Logger) *Gate {
	ctx := context.Background()
	if cfg.AdminPasswordHash == sc.DefaultAdminPasswordHash {
		logger.Warn(ctx, "admin password hash is the shipped default, change it before going to production")
	}
	if cfg.SecretKey == sc.DefaultSecretKey {
		logger.Warn(ctx, "jwt secret is the shipped default, change it before going to production")
	}
	return &Gate{
		passwordHash: cfg.AdminPasswordHash,
		secretKey:    []byte(cfg.SecretKey),
		validity:     cfg.TokenValidity,
		logger:       logger,
	}
}

// VerifyPassword reports whether candidate matches the stored hash.
func (g *Gate) VerifyPassword(candidate string) bool {
	return VerifyPassword(candidate, g.passwordHash)
}

// IssueToken mints a signed admin token valid for the configured duration.
func (g *Gate) IssueToken() (string, error) {
	return GenerateToken(g.secretKey, g.validity)
}

// ValidateToken reports whether tokenString is a currently valid admin
// token. It returns false on any verification error.
func (g *Gate) ValidateToken(tokenString string) bool {
	_, err := ParseToken(tokenString, g.secretKey)
	return err == nil
}

// CreateSession builds the client-visible session descriptor.
func (g *Gate) CreateSession() models.Session {
	return models.Session{
		Authenticated: true,
		Expires:       time.Now().Add(g.validity).Format(time.RFC3339),
	}
}
