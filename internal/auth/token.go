// Package auth issues and validates access tokens and hashes passwords.
package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const issuer = "agrismart-api"

// ErrInvalidToken covers every way a presented token can be unusable:
// bad signature, wrong algorithm, expired, or malformed claims.
var ErrInvalidToken = errors.New("auth: invalid token")

// TokenManager signs and parses HS256 access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager around a shared secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token carrying the user's ID.
func (t *TokenManager) Issue(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(t.ttl).Unix(),
		"iss":     issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates a token and returns the user ID it carries.
func (t *TokenManager) Parse(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
