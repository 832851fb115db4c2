package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
)

// IntakeStore defines the interface for intake record persistence.
// Records are immutable: the only mutations are create and delete.
type IntakeStore interface {
	// Create saves a new intake record to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain IntakeRecord if data is invalid.
	Create(ctx context.Context, record *domain.IntakeRecord) error

	// GetByID retrieves an intake record by its unique ID.
	// Returns ErrIntakeNotFound if the record does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.IntakeRecord, error)

	// ListByUserSince retrieves a user's intake records with ConsumedAt at or
	// after the given cutoff, ordered by consumption time ascending. Returns
	// an empty slice when no records match.
	ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.IntakeRecord, error)

	// Delete removes an intake record by its ID.
	// Returns ErrIntakeNotFound if the record does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
