package caffeine

import (
	"errors"
	"time"

	"github.com/joltlabs/jolt-api/internal/domain"
)

// Common errors
var (
	ErrInvalidHalfLife = errors.New("half-life must be greater than zero")
	ErrInvalidStep     = errors.New("step must be at least one minute")
	ErrInvalidWindow   = errors.New("window start must not be after end")
	ErrNegativeAmount  = errors.New("intake amount cannot be negative")
)

// Service defines the interface for caffeine model operations. Every method
// takes an explicit reference time so results are deterministic and testable;
// "now" resolution belongs to the caller.
type Service interface {
	// ActiveCaffeine computes the total active caffeine in milligrams at the
	// given instant for the user's sensitivity.
	ActiveCaffeine(
		records []*domain.IntakeRecord,
		sensitivity domain.Sensitivity,
		at time.Time,
	) (float64, error)

	// SampleLevels materializes the caffeine curve over [start, end] at a
	// fixed step in minutes. The end boundary is inclusive.
	SampleLevels(
		records []*domain.IntakeRecord,
		sensitivity domain.Sensitivity,
		start, end time.Time,
		stepMinutes int,
	) ([]Level, error)

	// FindPeak locates the maximum caffeine level within the configured
	// window past the reference time. Returns (nil, nil) for empty input.
	FindPeak(
		records []*domain.IntakeRecord,
		sensitivity domain.Sensitivity,
		now time.Time,
	) (*Peak, error)

	// PredictCrash estimates when the active level decays below the crash
	// threshold. Returns (nil, nil) when no crash is predicted.
	PredictCrash(
		records []*domain.IntakeRecord,
		sensitivity domain.Sensitivity,
		now time.Time,
	) (*time.Time, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new caffeine service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new caffeine service with custom parameters.
// A nil params falls back to the defaults, and zero-valued fields are filled
// from them, so the analysis routines never see a zero step or window.
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		return &defaultService{params: NewDefaultParams()}
	}

	return &defaultService{
		params: NewParams(ParamsConfig{
			CrashThresholdFraction: params.CrashThresholdFraction,
			CrashFloorMg:           params.CrashFloorMg,
			PeakWindowHours:        params.PeakWindowHours,
			CrashScanHours:         params.CrashScanHours,
			PeakStepMinutes:        params.PeakStepMinutes,
			CrashStepMinutes:       params.CrashStepMinutes,
		}),
	}
}

// validateInputs fails fast on contract violations. Silent clamping is
// deliberately avoided: a swallowed negative amount or half-life could mask
// an unsafe-dose miscalculation.
func validateInputs(records []*domain.IntakeRecord, sensitivity domain.Sensitivity) error {
	if !sensitivity.IsValid() {
		return domain.ErrInvalidSensitivity
	}
	if sensitivity.HalfLifeHours() <= 0 {
		return ErrInvalidHalfLife
	}

	for _, record := range records {
		if record.AmountMg < 0 {
			return ErrNegativeAmount
		}
	}

	return nil
}

// ActiveCaffeine implements the Service interface.
func (s *defaultService) ActiveCaffeine(
	records []*domain.IntakeRecord,
	sensitivity domain.Sensitivity,
	at time.Time,
) (float64, error) {
	if err := validateInputs(records, sensitivity); err != nil {
		return 0, err
	}

	return activeCaffeineAt(records, sensitivity.HalfLifeHours(), at), nil
}

// SampleLevels implements the Service interface.
func (s *defaultService) SampleLevels(
	records []*domain.IntakeRecord,
	sensitivity domain.Sensitivity,
	start, end time.Time,
	stepMinutes int,
) ([]Level, error) {
	if err := validateInputs(records, sensitivity); err != nil {
		return nil, err
	}
	if stepMinutes <= 0 {
		return nil, ErrInvalidStep
	}
	if start.After(end) {
		return nil, ErrInvalidWindow
	}

	return sampleLevels(records, sensitivity.HalfLifeHours(), start, end, stepMinutes), nil
}

// FindPeak implements the Service interface.
func (s *defaultService) FindPeak(
	records []*domain.IntakeRecord,
	sensitivity domain.Sensitivity,
	now time.Time,
) (*Peak, error) {
	if err := validateInputs(records, sensitivity); err != nil {
		return nil, err
	}

	return findPeak(records, sensitivity.HalfLifeHours(), now, s.params), nil
}

// PredictCrash implements the Service interface.
func (s *defaultService) PredictCrash(
	records []*domain.IntakeRecord,
	sensitivity domain.Sensitivity,
	now time.Time,
) (*time.Time, error) {
	if err := validateInputs(records, sensitivity); err != nil {
		return nil, err
	}

	return predictCrash(records, sensitivity.HalfLifeHours(), now, s.params), nil
}
