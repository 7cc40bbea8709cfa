package auth

import (
	"strings"
	"testing"

	sc "github.com/avigneron/boutique/internal/server/config"
)

func TestVerifyPassword_DefaultHashMatchesAdmin123(t *testing.T) {
	t.Parallel()

	if !VerifyPassword("admin123", sc.DefaultAdminPasswordHash) {
		t.Fatalf("shipped default hash must verify admin123")
	}
}

func TestVerifyPassword_Rejections(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	cases := []struct {
		name      string
		candidate string
	}{
		{"empty", ""},
		{"wrong", "wrong"},
		{"off by one", "correct hors"},
		{"much longer", strings.Repeat("correct horse", 5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if VerifyPassword(tc.candidate, hash) {
				t.Fatalf("candidate %q must not verify", tc.candidate)
			}
		})
	}

	if !VerifyPassword("correct horse", hash) {
		t.Fatalf("correct password must verify")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
}
