// Package users provides the user directory: records with a bcrypt password
// hash stored in Postgres and managed over the JSON API.
package users

import (
	"time"

	"github.com/google/uuid"
)

// User is a directory entry. The password hash never leaves the package.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand holds the fields for a new user.
type CreateCommand struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// UpdateCommand replaces a user's profile fields.
type UpdateCommand struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ResetPasswordCommand sets a new password.
type ResetPasswordCommand struct {
	Password string `json:"password"`
}
