// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleClaims carries the verified claims delivered by the Google OAuth
// callback. AvatarURL is optional; everything else is required.
type GoogleClaims struct {
	Email     string  `json:"email" validate:"required,email"`
	Name      string  `json:"name" validate:"required"`
	GoogleID  string  `json:"google_id" validate:"required"`
	AvatarURL *string `json:"avatar" validate:"omitempty"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User `json:"user"`
}

// AuthOutput returns the resolved user together with a freshly minted
// access token. Login and the Google callback share this shape; callers
// cannot tell a create from an update.
type AuthOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GoogleCallback resolves the claimed identity to a user record,
	// creating or relinking by email, and mints an access token.
	GoogleCallback(ctx context.Context, claims *GoogleClaims) (*AuthOutput, error)

	// GetUser loads the user bound to an authenticated request.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
