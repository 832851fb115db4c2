package caffeine

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluateSafety(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// weight=70kg → dailyLimit=399, warningLevel=315, dangerLevel=1050
	const weight = 70.0

	testCases := []struct {
		name         string
		singleDoseMg float64
		totalMg      float64
		expectedTier SafetyTier
		expectNil    bool
	}{
		{
			name:         "danger above ten percent of LD50",
			singleDoseMg: 100,
			totalMg:      1100,
			expectedTier: TierDanger,
		},
		{
			name:         "over the daily limit",
			singleDoseMg: 80,
			totalMg:      420,
			expectedTier: TierOverLimit,
		},
		{
			name:         "single dose above the 200mg cap",
			singleDoseMg: 220,
			totalMg:      200,
			expectedTier: TierHighSingleDose,
		},
		{
			name:         "approaching the warning level",
			singleDoseMg: 80,
			totalMg:      320,
			expectedTier: TierApproaching,
		},
		{
			name:         "silent when comfortably under every threshold",
			singleDoseMg: 50,
			totalMg:      280,
			expectNil:    true,
		},
		{
			name:         "daily limit boundary itself does not warn",
			singleDoseMg: 50,
			totalMg:      315,
			expectNil:    true,
		},
		{
			name:         "danger outranks over-limit",
			singleDoseMg: 300,
			totalMg:      1200,
			expectedTier: TierDanger,
		},
		{
			name:         "over-limit outranks high single dose",
			singleDoseMg: 250,
			totalMg:      450,
			expectedTier: TierOverLimit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assessment, err := EvaluateSafety(tc.singleDoseMg, tc.totalMg, weight)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if tc.expectNil {
				if assessment != nil {
					t.Fatalf("Expected no warning, got tier %q", assessment.Tier)
				}
				return
			}

			if assessment == nil {
				t.Fatalf("Expected tier %q, got no warning", tc.expectedTier)
			}
			if assessment.Tier != tc.expectedTier {
				t.Errorf("Expected tier %q, got %q", tc.expectedTier, assessment.Tier)
			}
		})
	}
}

func TestEvaluateSafetyThresholds(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assessment, err := EvaluateSafety(80, 320, 70)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if assessment == nil {
		t.Fatal("Expected an assessment")
	}

	if math.Abs(assessment.DailyLimitMg-399) > epsilon {
		t.Errorf("Expected daily limit 399, got %f", assessment.DailyLimitMg)
	}
	if math.Abs(assessment.WarningLevelMg-315) > epsilon {
		t.Errorf("Expected warning level 315, got %f", assessment.WarningLevelMg)
	}
	if math.Abs(assessment.DangerLevelMg-1050) > epsilon {
		t.Errorf("Expected danger level 1050, got %f", assessment.DangerLevelMg)
	}
	if math.Abs(assessment.RemainingMg-79) > epsilon {
		t.Errorf("Expected 79mg remaining, got %f", assessment.RemainingMg)
	}
}

func TestEvaluateSafetyRemainingNeverNegative(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assessment, err := EvaluateSafety(100, 500, 70)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if assessment == nil {
		t.Fatal("Expected an assessment")
	}
	if assessment.RemainingMg != 0 {
		t.Errorf("Expected remaining clamped to 0, got %f", assessment.RemainingMg)
	}
}

func TestEvaluateSafetyInvalidInputs(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name        string
		dose        float64
		total       float64
		weight      float64
		expectedErr error
	}{
		{"negative dose", -1, 100, 70, ErrInvalidDose},
		{"negative total", 50, -1, 70, ErrInvalidTotal},
		{"zero weight", 50, 100, 0, ErrInvalidBodyWeight},
		{"negative weight", 50, 100, -70, ErrInvalidBodyWeight},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EvaluateSafety(tc.dose, tc.total, tc.weight)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("Expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
