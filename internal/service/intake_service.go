package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/store"
)

// IntakeService provides operations on a user's caffeine intake log.
type IntakeService interface {
	// LogIntake records a new intake for the user. A future-dated consumption
	// time is allowed; the record contributes nothing until that instant.
	LogIntake(
		ctx context.Context,
		userID uuid.UUID,
		drinkName string,
		amountMg float64,
		consumedAt time.Time,
	) (*domain.IntakeRecord, error)

	// ListIntakes retrieves the user's records consumed at or after since,
	// ordered ascending. The window is clamped to the user's history
	// entitlement.
	ListIntakes(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.IntakeRecord, error)

	// DeleteIntake removes one of the user's records.
	// Returns ErrNotOwned if the record belongs to a different user.
	DeleteIntake(ctx context.Context, userID, recordID uuid.UUID) error
}

// IntakeServiceImpl implements the IntakeService interface
type IntakeServiceImpl struct {
	intakeStore store.IntakeStore
	alerts      AlertRequester
	historyDays int // 0 means unlimited history
	logger      *slog.Logger
	timeFunc    func() time.Time // Injectable for testing
}

// NewIntakeService creates a new IntakeService. historyDays limits how far
// back ListIntakes will reach; pass 0 for unlimited history.
func NewIntakeService(
	intakeStore store.IntakeStore,
	alerts AlertRequester,
	historyDays int,
	logger *slog.Logger,
) *IntakeServiceImpl {
	return &IntakeServiceImpl{
		intakeStore: intakeStore,
		alerts:      alerts,
		historyDays: historyDays,
		logger:      logger.With("component", "intake_service"),
		timeFunc:    time.Now,
	}
}

// Ensure IntakeServiceImpl implements IntakeService interface
var _ IntakeService = (*IntakeServiceImpl)(nil)

// LogIntake records a new intake and triggers an alert recompute.
func (s *IntakeServiceImpl) LogIntake(
	ctx context.Context,
	userID uuid.UUID,
	drinkName string,
	amountMg float64,
	consumedAt time.Time,
) (*domain.IntakeRecord, error) {
	record, err := domain.NewIntakeRecord(userID, drinkName, amountMg, consumedAt)
	if err != nil {
		s.logger.Debug("invalid intake record",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.intakeStore.Create(ctx, record); err != nil {
		s.logger.Error("failed to save intake record",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to save intake record: %w", err)
	}

	s.requestAlertRecompute(userID)

	s.logger.Info("intake logged",
		"record_id", record.ID,
		"user_id", userID,
		"amount_mg", amountMg)
	return record, nil
}

// ListIntakes retrieves the user's records, clamped to the history entitlement.
func (s *IntakeServiceImpl) ListIntakes(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]*domain.IntakeRecord, error) {
	if s.historyDays > 0 {
		earliest := s.timeFunc().AddDate(0, 0, -s.historyDays)
		if since.Before(earliest) {
			since = earliest
		}
	}

	records, err := s.intakeStore.ListByUserSince(ctx, userID, since)
	if err != nil {
		s.logger.Error("failed to list intake records",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list intake records: %w", err)
	}

	return records, nil
}

// DeleteIntake removes one of the user's records and triggers an alert
// recompute, since removing a dose can eliminate the predicted crash.
func (s *IntakeServiceImpl) DeleteIntake(ctx context.Context, userID, recordID uuid.UUID) error {
	record, err := s.intakeStore.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, store.ErrIntakeNotFound) {
			s.logger.Debug("intake record not found for delete",
				"record_id", recordID,
				"user_id", userID)
		} else {
			s.logger.Error("failed to retrieve intake record for delete",
				"error", err,
				"record_id", recordID)
		}
		return fmt.Errorf("failed to retrieve intake record: %w", err)
	}

	if record.UserID != userID {
		s.logger.Warn("attempted to delete another user's intake record",
			"record_id", recordID,
			"user_id", userID,
			"owner_id", record.UserID)
		return ErrNotOwned
	}

	if err := s.intakeStore.Delete(ctx, recordID); err != nil {
		s.logger.Error("failed to delete intake record",
			"error", err,
			"record_id", recordID)
		return fmt.Errorf("failed to delete intake record: %w", err)
	}

	s.requestAlertRecompute(userID)

	s.logger.Info("intake deleted",
		"record_id", recordID,
		"user_id", userID)
	return nil
}

// requestAlertRecompute enqueues a best-effort alert recompute.
func (s *IntakeServiceImpl) requestAlertRecompute(userID uuid.UUID) {
	if s.alerts == nil {
		return
	}
	if err := s.alerts.Request(userID); err != nil {
		s.logger.Warn("failed to enqueue alert recompute",
			"error", err,
			"user_id", userID)
	}
}
