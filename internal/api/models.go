package api

import (
	"time"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProfileResponse defines the response for profile endpoints.
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	WeightKg    float64   `json:"weight_kg"`
	Sensitivity string    `json:"sensitivity"`
	Onboarded   bool      `json:"onboarded"`
}

// UpdateProfileRequest defines the payload for the profile update endpoint.
// Submitting it completes (or re-confirms) onboarding.
type UpdateProfileRequest struct {
	WeightKg    float64 `json:"weight_kg"   validate:"required,gt=0"`
	Sensitivity string  `json:"sensitivity" validate:"required,oneof=LOW MEDIUM HIGH"`
}

// LogIntakeRequest defines the payload for logging a caffeine intake.
// ConsumedAt may be in the future for planned doses.
type LogIntakeRequest struct {
	DrinkName  string    `json:"drink_name"  validate:"required"`
	AmountMg   float64   `json:"amount_mg"   validate:"required,gt=0"`
	ConsumedAt time.Time `json:"consumed_at" validate:"required"`
}

// IntakeResponse defines the representation of a single intake record.
type IntakeResponse struct {
	ID         uuid.UUID `json:"id"`
	DrinkName  string    `json:"drink_name"`
	AmountMg   float64   `json:"amount_mg"`
	ConsumedAt time.Time `json:"consumed_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// IntakeListResponse defines the response for the intake list endpoint.
type IntakeListResponse struct {
	Intakes []IntakeResponse `json:"intakes"`
}

// PresetResponse defines one drink preset.
type PresetResponse struct {
	Name     string  `json:"name"`
	AmountMg float64 `json:"amount_mg"`
}

// PresetListResponse defines the response for the presets endpoint.
type PresetListResponse struct {
	Presets []PresetResponse `json:"presets"`
}

// CurrentLevelResponse defines the response for the current level endpoint.
type CurrentLevelResponse struct {
	ActiveMg float64   `json:"active_mg"`
	At       time.Time `json:"at"`
}

// TimelinePointResponse defines one sample on the caffeine curve.
type TimelinePointResponse struct {
	Timestamp time.Time `json:"timestamp"`
	ActiveMg  float64   `json:"active_mg"`
}

// TimelineResponse defines the response for the timeline endpoint.
type TimelineResponse struct {
	Levels []TimelinePointResponse `json:"levels"`
}

// PeakResponse defines the response for the peak endpoint. Time and AmountMg
// are omitted when nothing is logged.
type PeakResponse struct {
	Time     *time.Time `json:"time,omitempty"`
	AmountMg *float64   `json:"amount_mg,omitempty"`
}

// CrashResponse defines the response for the crash prediction endpoint.
// CrashTime is omitted when no crash is predicted.
type CrashResponse struct {
	CrashTime *time.Time `json:"crash_time,omitempty"`
}

// SafetyCheckRequest defines the payload for the safety check endpoint.
type SafetyCheckRequest struct {
	AmountMg float64 `json:"amount_mg" validate:"required,gt=0"`
}

// SafetyCheckResponse defines the response for the safety check endpoint.
// Tier and the threshold fields are omitted when no warning applies.
type SafetyCheckResponse struct {
	Warning        bool     `json:"warning"`
	Tier           string   `json:"tier,omitempty"`
	SingleDoseMg   *float64 `json:"single_dose_mg,omitempty"`
	TotalMg        *float64 `json:"total_mg,omitempty"`
	DailyLimitMg   *float64 `json:"daily_limit_mg,omitempty"`
	WarningLevelMg *float64 `json:"warning_level_mg,omitempty"`
	DangerLevelMg  *float64 `json:"danger_level_mg,omitempty"`
	RemainingMg    *float64 `json:"remaining_mg,omitempty"`
}
