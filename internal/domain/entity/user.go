// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single authenticated
// principal. Email is the durable identity key: a Google sign-in for an email
// that already has a native-password account links to that account instead of
// creating a new one.
type User struct {
	ID           uuid.UUID `json:"id"`         // The unique identifier for the user, assigned by the store.
	Email        string    `json:"email"`      // The user's primary contact email, unique across all users.
	Name         string    `json:"name"`       // The user's display name or real name.
	GoogleID     *string   `json:"google_id"`  // The Google 'sub' claim. Nil for accounts that never signed in with Google.
	AvatarURL    *string   `json:"avatar_url"` // URL of the user's avatar, refreshed on each Google callback. Nil when unknown.
	PasswordHash string    `json:"-"`          // Bcrypt hash. Never empty: Google-only accounts get an unguessable random credential.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this user account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification to this user's data.
}
