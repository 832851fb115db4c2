package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/domain/caffeine"
	"github.com/joltlabs/jolt-api/internal/store"
)

// analysisWindowHours is how far back analysis reaches for intake records.
// Older records have decayed to a negligible level at every supported
// half-life, and it doubles as the daily window for safety totals.
const analysisWindowHours = 24

// AnalysisService answers questions about a user's caffeine curve. It joins
// the user's profile and intake history with the pure caffeine model; every
// method takes an explicit reference time so handlers own "now" resolution.
type AnalysisService interface {
	// CurrentLevel computes the user's active caffeine in milligrams at the
	// given instant.
	CurrentLevel(ctx context.Context, userID uuid.UUID, at time.Time) (float64, error)

	// Timeline materializes the user's caffeine curve over [start, end] at a
	// fixed step in minutes.
	Timeline(
		ctx context.Context,
		userID uuid.UUID,
		start, end time.Time,
		stepMinutes int,
	) ([]caffeine.Level, error)

	// Peak locates the user's maximum caffeine level ahead of the reference
	// time. Returns (nil, nil) when nothing is logged.
	Peak(ctx context.Context, userID uuid.UUID, now time.Time) (*caffeine.Peak, error)

	// PredictCrash estimates when the user's level decays below the crash
	// threshold. Returns (nil, nil) when no crash is predicted.
	PredictCrash(ctx context.Context, userID uuid.UUID, now time.Time) (*time.Time, error)

	// CheckSafety evaluates a prospective dose against the user's daily
	// intake and body weight. Returns (nil, nil) when no warning applies.
	CheckSafety(
		ctx context.Context,
		userID uuid.UUID,
		singleDoseMg float64,
		now time.Time,
	) (*caffeine.SafetyAssessment, error)
}

// AnalysisServiceImpl implements the AnalysisService interface
type AnalysisServiceImpl struct {
	userStore   store.UserStore
	intakeStore store.IntakeStore
	caffeineSvc caffeine.Service
	logger      *slog.Logger
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(
	userStore store.UserStore,
	intakeStore store.IntakeStore,
	caffeineSvc caffeine.Service,
	logger *slog.Logger,
) AnalysisService {
	return &AnalysisServiceImpl{
		userStore:   userStore,
		intakeStore: intakeStore,
		caffeineSvc: caffeineSvc,
		logger:      logger.With("component", "analysis_service"),
	}
}

// loadInputs fetches the user's profile and the intake records that can still
// contribute at or after the given reference time.
func (s *AnalysisServiceImpl) loadInputs(
	ctx context.Context,
	userID uuid.UUID,
	ref time.Time,
) (*domain.UserProfile, []*domain.IntakeRecord, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load user for analysis",
			"error", err,
			"user_id", userID)
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}

	since := ref.Add(-analysisWindowHours * time.Hour)
	records, err := s.intakeStore.ListByUserSince(ctx, userID, since)
	if err != nil {
		s.logger.Error("failed to load intake records for analysis",
			"error", err,
			"user_id", userID)
		return nil, nil, fmt.Errorf("failed to load intake records: %w", err)
	}

	return user, records, nil
}

// CurrentLevel implements the AnalysisService interface.
func (s *AnalysisServiceImpl) CurrentLevel(
	ctx context.Context,
	userID uuid.UUID,
	at time.Time,
) (float64, error) {
	user, records, err := s.loadInputs(ctx, userID, at)
	if err != nil {
		return 0, err
	}

	return s.caffeineSvc.ActiveCaffeine(records, user.Sensitivity, at)
}

// Timeline implements the AnalysisService interface.
// Records consumed before the window still contribute to levels inside it,
// so the lookback is anchored at the window start.
func (s *AnalysisServiceImpl) Timeline(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
	stepMinutes int,
) ([]caffeine.Level, error) {
	user, records, err := s.loadInputs(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	return s.caffeineSvc.SampleLevels(records, user.Sensitivity, start, end, stepMinutes)
}

// Peak implements the AnalysisService interface.
func (s *AnalysisServiceImpl) Peak(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (*caffeine.Peak, error) {
	user, records, err := s.loadInputs(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return s.caffeineSvc.FindPeak(records, user.Sensitivity, now)
}

// PredictCrash implements the AnalysisService interface.
func (s *AnalysisServiceImpl) PredictCrash(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (*time.Time, error) {
	user, records, err := s.loadInputs(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return s.caffeineSvc.PredictCrash(records, user.Sensitivity, now)
}

// CheckSafety implements the AnalysisService interface.
// The daily total is the sum of everything consumed in the trailing window
// plus the prospective dose itself.
func (s *AnalysisServiceImpl) CheckSafety(
	ctx context.Context,
	userID uuid.UUID,
	singleDoseMg float64,
	now time.Time,
) (*caffeine.SafetyAssessment, error) {
	user, records, err := s.loadInputs(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	totalMg := singleDoseMg
	for _, record := range records {
		if record.ConsumedAt.After(now) {
			continue
		}
		totalMg += record.AmountMg
	}

	assessment, err := caffeine.EvaluateSafety(singleDoseMg, totalMg, user.WeightKg)
	if err != nil {
		s.logger.Debug("safety evaluation rejected inputs",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	return assessment, nil
}
