package auth

import (
	"log/slog"
	"testing"
	"time"

	"github.com/avigneron/boutique/internal/logging"
	sc "github.com/avigneron/boutique/internal/server/config"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	logger := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	return NewGate(cfg, logger)
}

func TestGate_IssueAndValidate(t *testing.T) {
	g := newTestGate(t)

	tok, err := g.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if !g.ValidateToken(tok) {
		t.Fatalf("freshly issued token must validate")
	}
	if g.ValidateToken("") {
		t.Fatalf("empty token must not validate")
	}
	if g.ValidateToken("garbage") {
		t.Fatalf("garbled token must not validate")
	}
}

func TestGate_Session24hAhead(t *testing.T) {
	g := newTestGate(t)

	s := g.CreateSession()
	if !s.Authenticated {
		t.Fatalf("session must be authenticated")
	}

	expires, err := time.Parse(time.RFC3339, s.Expires)
	if err != nil {
		t.Fatalf("expires is not RFC3339: %v", err)
	}
	delta := time.Until(expires)
	if delta < 23*time.Hour || delta > 25*time.Hour {
		t.Fatalf("session expiry not ~24h ahead: %v", delta)
	}
}

func TestGate_PasswordScenarios(t *testing.T) {
	g := newTestGate(t)

	if !g.VerifyPassword("admin123") {
		t.Fatalf("default credentials must accept admin123")
	}
	if g.VerifyPassword("wrong") {
		t.Fatalf("wrong password must be rejected")
	}
}
