package auth

import "golang.org/x/crypto/bcrypt"

// VerifyPassword compares candidate against the stored bcrypt hash.
// The bcrypt comparison is constant-time with respect to the candidate.
// Malformed input (empty candidate, bad hash) yields false, never an error.
func VerifyPassword(candidate, hash string) bool {
	if candidate == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

// HashPassword produces a bcrypt hash for out-of-band credential
// provisioning (see cmd/hashgen).
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
