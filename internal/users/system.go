package users

import (
	"context"

	"github.com/JaimeStill/ots-portal/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for user directory operations.
type System interface {
	// List returns a paginated list of users, searchable by email and name.
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[User], error)

	// Find returns the user with the given ID.
	Find(ctx context.Context, id uuid.UUID) (*User, error)

	// Create validates cmd, hashes the password, and inserts the user.
	Create(ctx context.Context, cmd CreateCommand) (*User, error)

	// Update replaces the profile fields of a user.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*User, error)

	// Delete removes a user.
	Delete(ctx context.Context, id uuid.UUID) error

	// ResetPassword replaces the stored password hash.
	ResetPassword(ctx context.Context, id uuid.UUID, cmd ResetPasswordCommand) error
}
