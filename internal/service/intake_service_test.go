package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIntakeService_LogIntake(t *testing.T) {
	userID := uuid.New()
	consumedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	intakeStore := new(MockIntakeStore)
	alertsMock := new(MockAlertRequester)
	intakeStore.On("Create", mock.Anything, mock.AnythingOfType("*domain.IntakeRecord")).Return(nil)
	alertsMock.On("Request", userID).Return(nil)

	svc := NewIntakeService(intakeStore, alertsMock, 0, slog.Default())

	record, err := svc.LogIntake(context.Background(), userID, "Espresso Shot", 63.0, consumedAt)
	require.NoError(t, err)

	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, "Espresso Shot", record.DrinkName)
	assert.Equal(t, 63.0, record.AmountMg)
	assert.Equal(t, consumedAt, record.ConsumedAt)

	intakeStore.AssertExpectations(t)
	alertsMock.AssertCalled(t, "Request", userID)
}

func TestIntakeService_LogIntakeRejectsInvalidAmount(t *testing.T) {
	intakeStore := new(MockIntakeStore)
	svc := NewIntakeService(intakeStore, nil, 0, slog.Default())

	_, err := svc.LogIntake(context.Background(), uuid.New(), "Coffee (8oz)", 0, time.Now())
	assert.ErrorIs(t, err, domain.ErrIntakeAmountInvalid)

	intakeStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIntakeService_ListIntakesClampsToHistoryWindow(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	earliest := now.AddDate(0, 0, -7)

	intakeStore := new(MockIntakeStore)
	// The requested "since" is 30 days back; a 7-day entitlement clamps it.
	intakeStore.On("ListByUserSince", mock.Anything, userID, earliest).
		Return([]*domain.IntakeRecord{}, nil)

	svc := NewIntakeService(intakeStore, nil, 7, slog.Default())
	svc.timeFunc = func() time.Time { return now }

	_, err := svc.ListIntakes(context.Background(), userID, now.AddDate(0, 0, -30))
	require.NoError(t, err)

	intakeStore.AssertExpectations(t)
}

func TestIntakeService_ListIntakesKeepsNarrowerWindow(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	since := now.Add(-2 * time.Hour)

	intakeStore := new(MockIntakeStore)
	intakeStore.On("ListByUserSince", mock.Anything, userID, since).
		Return([]*domain.IntakeRecord{}, nil)

	svc := NewIntakeService(intakeStore, nil, 7, slog.Default())
	svc.timeFunc = func() time.Time { return now }

	_, err := svc.ListIntakes(context.Background(), userID, since)
	require.NoError(t, err)

	intakeStore.AssertExpectations(t)
}

func TestIntakeService_DeleteIntake(t *testing.T) {
	userID := uuid.New()
	record, err := domain.NewIntakeRecord(userID, "Black Tea", 47.0, time.Now().UTC())
	require.NoError(t, err)

	intakeStore := new(MockIntakeStore)
	alertsMock := new(MockAlertRequester)
	intakeStore.On("GetByID", mock.Anything, record.ID).Return(record, nil)
	intakeStore.On("Delete", mock.Anything, record.ID).Return(nil)
	alertsMock.On("Request", userID).Return(nil)

	svc := NewIntakeService(intakeStore, alertsMock, 0, slog.Default())

	require.NoError(t, svc.DeleteIntake(context.Background(), userID, record.ID))

	intakeStore.AssertExpectations(t)
	alertsMock.AssertCalled(t, "Request", userID)
}

func TestIntakeService_DeleteIntakeNotOwned(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()
	record, err := domain.NewIntakeRecord(owner, "Soda (12oz)", 35.0, time.Now().UTC())
	require.NoError(t, err)

	intakeStore := new(MockIntakeStore)
	intakeStore.On("GetByID", mock.Anything, record.ID).Return(record, nil)

	svc := NewIntakeService(intakeStore, nil, 0, slog.Default())

	err = svc.DeleteIntake(context.Background(), intruder, record.ID)
	assert.ErrorIs(t, err, ErrNotOwned)

	intakeStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestIntakeService_DeleteIntakeNotFound(t *testing.T) {
	missingID := uuid.New()

	intakeStore := new(MockIntakeStore)
	intakeStore.On("GetByID", mock.Anything, missingID).Return(nil, store.ErrIntakeNotFound)

	svc := NewIntakeService(intakeStore, nil, 0, slog.Default())

	err := svc.DeleteIntake(context.Background(), uuid.New(), missingID)
	assert.ErrorIs(t, err, store.ErrIntakeNotFound)
}
