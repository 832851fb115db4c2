package caffeine

import (
	"errors"
	"testing"
	"time"

	"github.com/joltlabs/jolt-api/internal/domain"
)

func TestServiceValidation(t *testing.T) {
	t.Parallel() // Enable parallel execution
	svc := NewDefaultService()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("invalid sensitivity is rejected", func(t *testing.T) {
		_, err := svc.ActiveCaffeine(nil, domain.Sensitivity("EXTREME"), base)
		if !errors.Is(err, domain.ErrInvalidSensitivity) {
			t.Errorf("Expected ErrInvalidSensitivity, got %v", err)
		}
	})

	t.Run("negative amount is rejected, never clamped", func(t *testing.T) {
		records := []*domain.IntakeRecord{newTestRecord(-10, base)}

		_, err := svc.ActiveCaffeine(records, domain.SensitivityMedium, base)
		if !errors.Is(err, ErrNegativeAmount) {
			t.Errorf("Expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("zero step is rejected", func(t *testing.T) {
		_, err := svc.SampleLevels(nil, domain.SensitivityMedium, base, base.Add(time.Hour), 0)
		if !errors.Is(err, ErrInvalidStep) {
			t.Errorf("Expected ErrInvalidStep, got %v", err)
		}
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		_, err := svc.SampleLevels(nil, domain.SensitivityMedium, base.Add(time.Hour), base, 15)
		if !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("Expected ErrInvalidWindow, got %v", err)
		}
	})
}

func TestServiceSensitivityHalfLives(t *testing.T) {
	t.Parallel() // Enable parallel execution
	svc := NewDefaultService()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	records := []*domain.IntakeRecord{newTestRecord(100, base)}

	// After 6h: LOW (6h half-life) is at exactly 50mg, HIGH (4h) is lower,
	// MEDIUM (5h) sits in between.
	at := base.Add(6 * time.Hour)

	low, err := svc.ActiveCaffeine(records, domain.SensitivityLow, at)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	medium, err := svc.ActiveCaffeine(records, domain.SensitivityMedium, at)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	high, err := svc.ActiveCaffeine(records, domain.SensitivityHigh, at)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if low < 50-epsilon || low > 50+epsilon {
		t.Errorf("Expected LOW sensitivity at 50mg after one half-life, got %f", low)
	}
	if !(high < medium && medium < low) {
		t.Errorf("Expected faster metabolizers to retain less: high=%f medium=%f low=%f",
			high, medium, low)
	}
}

func TestServicePredictCrashEmptyRecords(t *testing.T) {
	t.Parallel() // Enable parallel execution
	svc := NewDefaultService()
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	crash, err := svc.PredictCrash(nil, domain.SensitivityMedium, now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if crash != nil {
		t.Errorf("Expected no crash for empty records, got %v", crash)
	}
}

func TestServiceParamsNormalization(t *testing.T) {
	t.Parallel() // Enable parallel execution
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	records := []*domain.IntakeRecord{newTestRecord(400, base)}

	t.Run("nil params fall back to defaults", func(t *testing.T) {
		svc := NewServiceWithParams(nil)

		peak, err := svc.FindPeak(records, domain.SensitivityMedium, base.Add(time.Minute))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if peak == nil {
			t.Fatal("Expected a peak, got nil")
		}
	})

	t.Run("zero-valued fields are filled from defaults", func(t *testing.T) {
		// A hand-built Params with zero steps would stall the scan loops;
		// the constructor must fill those fields before analysis runs.
		svc := NewServiceWithParams(&Params{CrashFloorMg: 50})

		crash, err := svc.PredictCrash(records, domain.SensitivityMedium, base.Add(time.Minute))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if crash == nil {
			t.Fatal("Expected a crash, got nil")
		}
	})
}

func TestServiceCustomParams(t *testing.T) {
	t.Parallel() // Enable parallel execution
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	records := []*domain.IntakeRecord{newTestRecord(400, base)}

	// Shrink the crash scan to 1h: the 400mg dose cannot reach its 100mg
	// threshold that fast, so no crash is reported.
	svc := NewServiceWithParams(NewParams(ParamsConfig{CrashScanHours: 1}))

	crash, err := svc.PredictCrash(records, domain.SensitivityMedium, base.Add(time.Minute))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if crash != nil {
		t.Errorf("Expected no crash inside a 1h scan, got %v", crash)
	}
}
