package api

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/domain/caffeine"
	"github.com/joltlabs/jolt-api/internal/service/auth"
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

// stubJWTService is a minimal JWTService implementation for handler tests.
type stubJWTService struct {
	userID      uuid.UUID
	validateErr error
}

func (s *stubJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return "access-token", nil
}

func (s *stubJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return &auth.Claims{UserID: s.userID, TokenType: "access"}, nil
}

func (s *stubJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return "refresh-token", nil
}

func (s *stubJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return &auth.Claims{UserID: s.userID, TokenType: "refresh"}, nil
}

// stubPasswordSuite implements both PasswordHasher and PasswordVerifier.
type stubPasswordSuite struct {
	compareErr error
}

func (s *stubPasswordSuite) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *stubPasswordSuite) Compare(hashedPassword, password string) error {
	return s.compareErr
}

var errWrongPassword = errors.New("crypto/bcrypt: hashedPassword is not the hash of the given password")

// MockIntakeService mocks the service.IntakeService interface
type MockIntakeService struct {
	mock.Mock
}

func (m *MockIntakeService) LogIntake(
	ctx context.Context,
	userID uuid.UUID,
	drinkName string,
	amountMg float64,
	consumedAt time.Time,
) (*domain.IntakeRecord, error) {
	args := m.Called(ctx, userID, drinkName, amountMg, consumedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IntakeRecord), args.Error(1)
}

func (m *MockIntakeService) ListIntakes(
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

func (m *MockIntakeService) DeleteIntake(ctx context.Context, userID, recordID uuid.UUID) error {
	args := m.Called(ctx, userID, recordID)
	return args.Error(0)
}

// MockAnalysisService mocks the service.AnalysisService interface
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) CurrentLevel(
	ctx context.Context,
	userID uuid.UUID,
	at time.Time,
) (float64, error) {
	args := m.Called(ctx, userID, at)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockAnalysisService) Timeline(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
	stepMinutes int,
) ([]caffeine.Level, error) {
	args := m.Called(ctx, userID, start, end, stepMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]caffeine.Level), args.Error(1)
}

func (m *MockAnalysisService) Peak(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (*caffeine.Peak, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*caffeine.Peak), args.Error(1)
}

func (m *MockAnalysisService) PredictCrash(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (*time.Time, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockAnalysisService) CheckSafety(
	ctx context.Context,
	userID uuid.UUID,
	singleDoseMg float64,
	now time.Time,
) (*caffeine.SafetyAssessment, error) {
	args := m.Called(ctx, userID, singleDoseMg, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*caffeine.SafetyAssessment), args.Error(1)
}

// MockProfileService mocks the service.ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) CompleteOnboarding(
	ctx context.Context,
	userID uuid.UUID,
	weightKg float64,
	sensitivity domain.Sensitivity,
) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, weightKg, sensitivity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) ResetOnboarding(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
