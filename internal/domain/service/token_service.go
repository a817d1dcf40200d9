package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
// Tokens are minted by the account system; this service only needs the shared secret.
type TokenService interface {
	// GenerateAccessToken issues an access token for userID valid for ttl.
	GenerateAccessToken(userID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
