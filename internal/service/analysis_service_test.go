package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/domain/caffeine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOnboardedUser(sensitivity domain.Sensitivity, weightKg float64) *domain.UserProfile {
	return &domain.UserProfile{
		ID:             uuid.New(),
		Email:          "test@example.com",
		HashedPassword: "hashed",
		WeightKg:       weightKg,
		Sensitivity:    sensitivity,
		Onboarded:      true,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func newAnalysisService(
	user *domain.UserProfile,
	records []*domain.IntakeRecord,
) AnalysisService {
	userStore := new(MockUserStore)
	intakeStore := new(MockIntakeStore)
	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	intakeStore.On("ListByUserSince", mock.Anything, user.ID, mock.AnythingOfType("time.Time")).
		Return(records, nil)

	return NewAnalysisService(userStore, intakeStore, caffeine.NewDefaultService(), slog.Default())
}

func TestAnalysisService_CurrentLevelAfterOneHalfLife(t *testing.T) {
	user := newOnboardedUser(domain.SensitivityMedium, 70.0)
	now := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)

	// 100mg consumed one medium half-life (5h) ago reads as 50mg.
	record, err := domain.NewIntakeRecord(user.ID, "Coffee (8oz)", 100.0, now.Add(-5*time.Hour))
	require.NoError(t, err)

	svc := newAnalysisService(user, []*domain.IntakeRecord{record})

	level, err := svc.CurrentLevel(context.Background(), user.ID, now)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, level, 0.001)
}

func TestAnalysisService_CurrentLevelEmptyHistory(t *testing.T) {
	user := newOnboardedUser(domain.SensitivityMedium, 70.0)
	svc := newAnalysisService(user, []*domain.IntakeRecord{})

	level, err := svc.CurrentLevel(context.Background(), user.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, level)
}

func TestAnalysisService_TimelineSampleCount(t *testing.T) {
	user := newOnboardedUser(domain.SensitivityMedium, 70.0)
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	svc := newAnalysisService(user, []*domain.IntakeRecord{})

	levels, err := svc.Timeline(context.Background(), user.ID, start, end, 15)
	require.NoError(t, err)

	// Inclusive end boundary: 9:00, 9:15, 9:30, 9:45, 10:00.
	require.Len(t, levels, 5)
	assert.Equal(t, start, levels[0].Timestamp)
	assert.Equal(t, end, levels[4].Timestamp)
}

func TestAnalysisService_TimelineRejectsInvertedWindow(t *testing.T) {
	user := newOnboardedUser(domain.SensitivityMedium, 70.0)
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	svc := newAnalysisService(user, []*domain.IntakeRecord{})

	_, err := svc.Timeline(context.Background(), user.ID, start, start.Add(-time.Hour), 5)
	assert.ErrorIs(t, err, caffeine.ErrInvalidWindow)
}

func TestAnalysisService_PeakAndCrash(t *testing.T) {
	user := newOnboardedUser(domain.SensitivityMedium, 70.0)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	record, err := domain.NewIntakeRecord(user.ID, "Energy Drink", 400.0, now)
	require.NoError(t, err)

	svc := newAnalysisService(user, []*domain.IntakeRecord{record})

	peak, err := svc.Peak(context.Background(), user.ID, now)
	require.NoError(t, err)
	require.NotNil(t, peak)
	assert.Equal(t, now, peak.Time)
	assert.InDelta(t, 400.0, peak.AmountMg, 0.001)

	crash, err := svc.PredictCrash(context.Background(), user.ID, now)
	require.NoError(t, err)
	require.NotNil(t, crash)
	assert.True(t, crash.After(now), "crash must come after the dose")
}

func TestAnalysisService_PeakEmptyHistory(t *testing.T) {
	user := newOnboardedUser(domain.SensitivityMedium, 70.0)
	svc := newAnalysisService(user, []*domain.IntakeRecord{})

	peak, err := svc.Peak(context.Background(), user.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, peak)
}

func TestAnalysisService_CheckSafetyIncludesProspectiveDose(t *testing.T) {
	user := newOnboardedUser(domain.SensitivityMedium, 70.0)
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	// 240mg already consumed today; an 80mg dose lands at 320mg, which sits
	// in the approaching band for a 70kg adult (warning level 315mg).
	record, err := domain.NewIntakeRecord(user.ID, "Coffee (8oz)", 240.0, now.Add(-3*time.Hour))
	require.NoError(t, err)

	svc := newAnalysisService(user, []*domain.IntakeRecord{record})

	assessment, err := svc.CheckSafety(context.Background(), user.ID, 80.0, now)
	require.NoError(t, err)
	require.NotNil(t, assessment)
	assert.Equal(t, caffeine.TierApproaching, assessment.Tier)
	assert.InDelta(t, 320.0, assessment.TotalMg, 0.001)
}

func TestAnalysisService_CheckSafetyIgnoresFutureDoses(t *testing.T) {
	user := newOnboardedUser(domain.SensitivityMedium, 70.0)
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	// A planned future dose must not count toward today's total.
	record, err := domain.NewIntakeRecord(user.ID, "Energy Drink", 500.0, now.Add(2*time.Hour))
	require.NoError(t, err)

	svc := newAnalysisService(user, []*domain.IntakeRecord{record})

	assessment, err := svc.CheckSafety(context.Background(), user.ID, 50.0, now)
	require.NoError(t, err)
	assert.Nil(t, assessment, "50mg alone is well within limits")
}

func TestAnalysisService_CheckSafetySilentWhenWithinLimits(t *testing.T) {
	user := newOnboardedUser(domain.SensitivityMedium, 70.0)
	svc := newAnalysisService(user, []*domain.IntakeRecord{})

	assessment, err := svc.CheckSafety(context.Background(), user.ID, 95.0, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, assessment)
}
