package domain

// Sensitivity categorizes how quickly a user metabolizes caffeine. Each
// category maps to a fixed elimination half-life used by the decay model.
type Sensitivity string

// Possible sensitivity values.
const (
	SensitivityLow    Sensitivity = "LOW"
	SensitivityMedium Sensitivity = "MEDIUM"
	SensitivityHigh   Sensitivity = "HIGH"
)

// Elimination half-lives in hours per sensitivity category.
const (
	lowSensitivityHalfLife    = 6.0
	mediumSensitivityHalfLife = 5.0
	highSensitivityHalfLife   = 4.0
)

// HalfLifeHours returns the assumed caffeine elimination half-life for the
// sensitivity category. Unknown values fall back to the medium half-life;
// callers that need strict validation should check IsValid first.
func (s Sensitivity) HalfLifeHours() float64 {
	switch s {
	case SensitivityLow:
		return lowSensitivityHalfLife
	case SensitivityHigh:
		return highSensitivityHalfLife
	default:
		return mediumSensitivityHalfLife
	}
}

// IsValid reports whether the sensitivity is one of the known categories.
func (s Sensitivity) IsValid() bool {
	switch s {
	case SensitivityLow, SensitivityMedium, SensitivityHigh:
		return true
	default:
		return false
	}
}

// DisplayName returns a short human-readable label for the category.
func (s Sensitivity) DisplayName() string {
	switch s {
	case SensitivityLow:
		return "Caffeine Veteran"
	case SensitivityHigh:
		return "Caffeine Sensitive"
	default:
		return "Regular Coffee Drinker"
	}
}
