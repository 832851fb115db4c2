package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/store"
)

// AlertRequester asks the alert scheduler to recompute a user's crash alert.
// Requests are best-effort; a full queue is logged and the triggering
// operation still succeeds.
type AlertRequester interface {
	Request(userID uuid.UUID) error
}

// ProfileService provides operations on the user's caffeine profile.
type ProfileService interface {
	// GetProfile retrieves a user's profile by their ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)

	// CompleteOnboarding records the user's body weight and sensitivity and
	// marks the profile onboarded. It also serves plain profile updates, since
	// updating either value re-confirms the onboarding answers.
	CompleteOnboarding(
		ctx context.Context,
		userID uuid.UUID,
		weightKg float64,
		sensitivity domain.Sensitivity,
	) (*domain.UserProfile, error)

	// ResetOnboarding clears the onboarded flag so the client re-runs
	// onboarding. Intake history is left untouched.
	ResetOnboarding(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

// ProfileServiceImpl implements the ProfileService interface
type ProfileServiceImpl struct {
	userStore store.UserStore
	alerts    AlertRequester
	logger    *slog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(userStore store.UserStore, alerts AlertRequester, logger *slog.Logger) ProfileService {
	return &ProfileServiceImpl{
		userStore: userStore,
		alerts:    alerts,
		logger:    logger.With("component", "profile_service"),
	}
}

// GetProfile retrieves a user's profile by their ID
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("profile not found",
				"user_id", userID)
		} else {
			s.logger.Error("failed to retrieve profile",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}

	return user, nil
}

// CompleteOnboarding records the user's onboarding answers and triggers an
// alert recompute, since a sensitivity change shifts the decay curve.
func (s *ProfileServiceImpl) CompleteOnboarding(
	ctx context.Context,
	userID uuid.UUID,
	weightKg float64,
	sensitivity domain.Sensitivity,
) (*domain.UserProfile, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to retrieve user for onboarding",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to retrieve user for onboarding: %w", err)
	}

	if err := user.CompleteOnboarding(weightKg, sensitivity); err != nil {
		s.logger.Debug("invalid onboarding answers",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to save onboarded profile",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.requestAlertRecompute(userID)

	s.logger.Info("profile onboarded",
		"user_id", userID,
		"sensitivity", sensitivity)
	return user, nil
}

// ResetOnboarding clears the onboarded flag
func (s *ProfileServiceImpl) ResetOnboarding(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to retrieve user for onboarding reset",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to retrieve user for onboarding reset: %w", err)
	}

	user.ResetOnboarding()

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to save onboarding reset",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("onboarding reset",
		"user_id", userID)
	return user, nil
}

// requestAlertRecompute enqueues a best-effort alert recompute.
func (s *ProfileServiceImpl) requestAlertRecompute(userID uuid.UUID) {
	if s.alerts == nil {
		return
	}
	if err := s.alerts.Request(userID); err != nil {
		s.logger.Warn("failed to enqueue alert recompute",
			"error", err,
			"user_id", userID)
	}
}
