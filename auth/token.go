package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueAdminToken signs a short-lived HS256 token for the admin session.
// The login guarding it is the app's hardcoded credential check; the
// token exists so admin routes have a bearer to validate, not as a
// security boundary.
func IssueAdminToken(username, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
