package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
)

// UserStore defines the interface for user profile persistence.
type UserStore interface {
	// Create saves a new user profile to the store.
	// The profile's HashedPassword must already be populated; the store never
	// sees plaintext passwords.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain UserProfile if data is invalid.
	Create(ctx context.Context, user *domain.UserProfile) error

	// GetByID retrieves a user profile by its unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error)

	// GetByEmail retrieves a user profile by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)

	// Update modifies an existing profile's weight, sensitivity, onboarded
	// flag and hashed password. Returns ErrUserNotFound if the user does not
	// exist and validation errors if data is invalid.
	Update(ctx context.Context, user *domain.UserProfile) error
}
