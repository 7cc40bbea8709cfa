// Package auth implements the admin credential gate: bcrypt password
// verification, signed session tokens, and the derived session descriptor.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avigneron/boutique/internal/common"
)

// RoleAdmin is the only role the gate issues or accepts.
const RoleAdmin = "admin"

// Claims carries the standard registered claims plus the role assertion.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateToken produces an HS256-signed token embedding the admin role and
// an expiry validityDuration from now.
func GenerateToken(secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Role: RoleAdmin,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and checks the
// role claim. Any failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Role != RoleAdmin {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
