package caffeine

import "errors"

// Safety thresholds scaled by body weight, plus the absolute single-dose cap.
const (
	// SafeDailyMgPerKg puts the daily limit at ~400mg for a 70kg person.
	SafeDailyMgPerKg = 5.7

	// WarningMgPerKg triggers an early warning at ~315mg for a 70kg person.
	WarningMgPerKg = 4.5

	// DangerMgPerKg approximates the LD50 figure; the danger tier fires at
	// 10% of it.
	DangerMgPerKg = 150

	// MaxSingleDoseMg is the FDA-recommended single-dose ceiling.
	MaxSingleDoseMg = 200
)

// Safety evaluation errors
var (
	ErrInvalidDose       = errors.New("dose cannot be negative")
	ErrInvalidTotal      = errors.New("total cannot be negative")
	ErrInvalidBodyWeight = errors.New("body weight must be greater than zero")
)

// SafetyTier classifies a consumption level, from mild to severe.
type SafetyTier string

// Possible safety tiers, ordered by severity.
const (
	TierApproaching    SafetyTier = "approaching"
	TierHighSingleDose SafetyTier = "high_single_dose"
	TierOverLimit      SafetyTier = "over_limit"
	TierDanger         SafetyTier = "danger"
)

// SafetyAssessment is the evaluator's verdict plus the numbers a client needs
// to render a message. Exact wording is a presentation concern.
type SafetyAssessment struct {
	Tier           SafetyTier `json:"tier"`
	SingleDoseMg   float64    `json:"single_dose_mg"`
	TotalMg        float64    `json:"total_mg"`
	DailyLimitMg   float64    `json:"daily_limit_mg"`
	WarningLevelMg float64    `json:"warning_level_mg"`
	DangerLevelMg  float64    `json:"danger_level_mg"`
	RemainingMg    float64    `json:"remaining_mg"`
}

// EvaluateSafety classifies a dose against the weight-scaled thresholds.
//
// singleDoseMg is the planned or just-logged amount; totalMg is the resulting
// daily total including that amount. The evaluator is independent of the decay
// model: it operates on raw summed milligrams, not decayed active caffeine.
//
// First matching tier wins: danger, then over the daily limit, then a single
// dose above the 200mg cap, then approaching the warning level. Returns
// (nil, nil) when consumption is comfortably under every threshold; "no
// warning" is a normal outcome, not an error.
func EvaluateSafety(singleDoseMg, totalMg, weightKg float64) (*SafetyAssessment, error) {
	if singleDoseMg < 0 {
		return nil, ErrInvalidDose
	}
	if totalMg < 0 {
		return nil, ErrInvalidTotal
	}
	if weightKg <= 0 {
		return nil, ErrInvalidBodyWeight
	}

	dailyLimit := weightKg * SafeDailyMgPerKg
	warningLevel := weightKg * WarningMgPerKg
	dangerLevel := weightKg * DangerMgPerKg * 0.1

	assessment := &SafetyAssessment{
		SingleDoseMg:   singleDoseMg,
		TotalMg:        totalMg,
		DailyLimitMg:   dailyLimit,
		WarningLevelMg: warningLevel,
		DangerLevelMg:  dangerLevel,
		RemainingMg:    dailyLimit - totalMg,
	}
	if assessment.RemainingMg < 0 {
		assessment.RemainingMg = 0
	}

	switch {
	case totalMg > dangerLevel:
		assessment.Tier = TierDanger
	case totalMg > dailyLimit:
		assessment.Tier = TierOverLimit
	case singleDoseMg > MaxSingleDoseMg:
		assessment.Tier = TierHighSingleDose
	case totalMg > warningLevel:
		assessment.Tier = TierApproaching
	default:
		// Comfortably under every threshold: stay silent.
		return nil, nil
	}

	return assessment, nil
}
