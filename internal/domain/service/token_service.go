package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeBearer is the token_type label returned with every issued token.
const TokenTypeBearer = "Bearer"

// Claims defines the custom claims carried by issued access tokens.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService mints and validates opaque bearer credentials bound to a user.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a new access token for the given user.
	IssueToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
