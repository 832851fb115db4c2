package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/store"
)

// Notifier is the delivery boundary for crash alerts. The scheduler decides
// when an alert should fire; the notifier owns how the pending alert reaches
// the user (push service, persisted queue, etc.).
type Notifier interface {
	// ScheduleCrashAlert registers a crash alert for the user at the given time.
	ScheduleCrashAlert(ctx context.Context, userID uuid.UUID, fireAt time.Time) error

	// CancelCrashAlerts removes all pending crash alerts for the user.
	// Cancelling when none are pending is not an error.
	CancelCrashAlerts(ctx context.Context, userID uuid.UUID) error
}

// StoreNotifier implements Notifier by persisting pending alerts through an
// AlertStore. A separate delivery process drains the table when alerts come due.
type StoreNotifier struct {
	alertStore store.AlertStore
	logger     *slog.Logger
}

// NewStoreNotifier creates a store-backed Notifier.
func NewStoreNotifier(alertStore store.AlertStore, logger *slog.Logger) *StoreNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreNotifier{
		alertStore: alertStore,
		logger:     logger.With(slog.String("component", "store_notifier")),
	}
}

var _ Notifier = (*StoreNotifier)(nil)

// ScheduleCrashAlert implements Notifier.
func (n *StoreNotifier) ScheduleCrashAlert(ctx context.Context, userID uuid.UUID, fireAt time.Time) error {
	alert := &store.CrashAlert{
		ID:        uuid.New(),
		UserID:    userID,
		FireAt:    fireAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}

	if err := n.alertStore.Create(ctx, alert); err != nil {
		return fmt.Errorf("failed to persist crash alert: %w", err)
	}
	return nil
}

// CancelCrashAlerts implements Notifier.
func (n *StoreNotifier) CancelCrashAlerts(ctx context.Context, userID uuid.UUID) error {
	if err := n.alertStore.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to cancel crash alerts: %w", err)
	}
	return nil
}
