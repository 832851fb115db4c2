package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CrashAlert is a pending crash notification scheduled for a user. The store
// is the hand-off point to the delivery mechanism; the core only schedules
// and cancels.
type CrashAlert struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FireAt    time.Time `json:"fire_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AlertStore defines the interface for pending crash alert persistence.
type AlertStore interface {
	// Create saves a new pending alert.
	Create(ctx context.Context, alert *CrashAlert) error

	// ListPendingByUser retrieves a user's pending alerts ordered by fire time.
	// Returns an empty slice when there are none.
	ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]*CrashAlert, error)

	// DeleteByUser removes all pending alerts for a user. Deleting zero rows
	// is not an error: cancel-all is a full-replace operation.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
