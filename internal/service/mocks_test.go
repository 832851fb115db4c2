package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockIntakeStore mocks the store.IntakeStore interface
type MockIntakeStore struct {
	mock.Mock
}

func (m *MockIntakeStore) Create(ctx context.Context, record *domain.IntakeRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockIntakeStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.IntakeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IntakeRecord), args.Error(1)
}

func (m *MockIntakeStore) ListByUserSince(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]*domain.IntakeRecord, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.IntakeRecord), args.Error(1)
}

func (m *MockIntakeStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAlertRequester mocks the AlertRequester interface
type MockAlertRequester struct {
	mock.Mock
}

func (m *MockAlertRequester) Request(userID uuid.UUID) error {
	args := m.Called(userID)
	return args.Error(0)
}
