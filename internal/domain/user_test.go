package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewUserProfile(t *testing.T) {
	t.Parallel() // Enable parallel execution

	t.Run("valid profile starts un-onboarded with defaults", func(t *testing.T) {
		user, err := NewUserProfile("drinker@example.com", "a-long-enough-password")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if user.Onboarded {
			t.Error("Expected new profile to start un-onboarded")
		}
		if user.WeightKg != DefaultWeightKg {
			t.Errorf("Expected default weight %f, got %f", DefaultWeightKg, user.WeightKg)
		}
		if user.Sensitivity != SensitivityMedium {
			t.Errorf("Expected medium sensitivity, got %s", user.Sensitivity)
		}
	})

	testCases := []struct {
		name        string
		email       string
		password    string
		expectedErr error
	}{
		{"empty email", "", "a-long-enough-password", ErrEmptyEmail},
		{"malformed email", "not-an-email", "a-long-enough-password", ErrInvalidEmail},
		{"missing domain dot", "user@host", "a-long-enough-password", ErrInvalidEmail},
		{"short password", "drinker@example.com", "short", ErrPasswordTooShort},
		{"long password", "drinker@example.com", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUserProfile(tc.email, tc.password)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("Expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestCompleteOnboarding(t *testing.T) {
	t.Parallel() // Enable parallel execution

	user, err := NewUserProfile("drinker@example.com", "a-long-enough-password")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := user.CompleteOnboarding(82.5, SensitivityHigh); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !user.Onboarded {
		t.Error("Expected onboarded flag to be set")
	}
	if user.WeightKg != 82.5 {
		t.Errorf("Expected weight 82.5, got %f", user.WeightKg)
	}
	if user.Sensitivity != SensitivityHigh {
		t.Errorf("Expected high sensitivity, got %s", user.Sensitivity)
	}

	t.Run("invalid weight is rejected", func(t *testing.T) {
		if err := user.CompleteOnboarding(0, SensitivityLow); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("Expected ErrInvalidWeight, got %v", err)
		}
	})

	t.Run("invalid sensitivity is rejected", func(t *testing.T) {
		err := user.CompleteOnboarding(70, Sensitivity("EXTREME"))
		if !errors.Is(err, ErrInvalidSensitivity) {
			t.Errorf("Expected ErrInvalidSensitivity, got %v", err)
		}
	})
}

func TestResetOnboarding(t *testing.T) {
	t.Parallel() // Enable parallel execution

	user, err := NewUserProfile("drinker@example.com", "a-long-enough-password")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := user.CompleteOnboarding(70, SensitivityLow); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	user.ResetOnboarding()

	if user.Onboarded {
		t.Error("Expected onboarded flag to be cleared")
	}
	// Reset keeps the collected profile values; only the flag changes.
	if user.WeightKg != 70 || user.Sensitivity != SensitivityLow {
		t.Error("Expected weight and sensitivity to survive a reset")
	}
}

func TestSensitivityHalfLives(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		sensitivity Sensitivity
		halfLife    float64
	}{
		{SensitivityLow, 6.0},
		{SensitivityMedium, 5.0},
		{SensitivityHigh, 4.0},
	}

	for _, tc := range testCases {
		if got := tc.sensitivity.HalfLifeHours(); got != tc.halfLife {
			t.Errorf("%s: expected half-life %f, got %f", tc.sensitivity, tc.halfLife, got)
		}
	}

	if Sensitivity("EXTREME").IsValid() {
		t.Error("Expected unknown sensitivity to be invalid")
	}
}
