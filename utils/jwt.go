package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long an issued session token (and its cookie) stays valid.
const SessionTTL = 30 * 24 * time.Hour

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "jwt"

var jwtSecret []byte

// SetJWTSecret installs the signing secret. It must be called once at
// startup before any token is issued or verified; an empty secret is a
// configuration error, not something to paper over with a default.
func SetJWTSecret(secret string) error {
	if secret == "" {
		return errors.New("JWT secret is not configured")
	}
	jwtSecret = []byte(secret)
	return nil
}

type SessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed session token for the given user id,
// expiring SessionTTL from now.
func GenerateToken(userID uint) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("JWT secret is not configured")
	}

	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "restaurant-manager",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies signature and expiry and returns the embedded claims.
func ParseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
