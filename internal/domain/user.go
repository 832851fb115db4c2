package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrInvalidWeight    = errors.New("body weight must be greater than zero")
)

// DefaultWeightKg is the weight assumed for a profile before onboarding
// collects a real value.
const DefaultWeightKg = 70.0

// UserProfile represents a registered user of the Jolt application.
// It carries the authentication fields plus the two inputs the caffeine
// model depends on: body weight and sensitivity.
type UserProfile struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	Password       string      `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string      `json:"-"` // Never expose password hash in JSON
	WeightKg       float64     `json:"weight_kg"`
	Sensitivity    Sensitivity `json:"sensitivity"`
	Onboarded      bool        `json:"onboarded"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewUserProfile creates a new UserProfile with the given email and password.
// The profile starts with the default weight, medium sensitivity, and the
// onboarded flag cleared; onboarding fills in the real values.
//
// NOTE: This function only sets up the profile with the plaintext password.
// The caller is responsible for hashing the password before storing it.
func NewUserProfile(email, password string) (*UserProfile, error) {
	user := &UserProfile{
		ID:          uuid.New(),
		Email:       email,
		Password:    password, // Plaintext password - must be hashed before storage
		WeightKg:    DefaultWeightKg,
		Sensitivity: SensitivityMedium,
		Onboarded:   false,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the UserProfile has valid data.
// Returns an error if any field fails validation.
func (u *UserProfile) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.WeightKg <= 0 {
		return ErrInvalidWeight
	}

	if !u.Sensitivity.IsValid() {
		return ErrInvalidSensitivity
	}

	// During creation/update we validate the provided plaintext password;
	// existing users loaded from the store carry only the hash.
	if u.Password != "" {
		if len(u.Password) < 12 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 { // bcrypt's practical limit
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// CompleteOnboarding records the onboarding answers and marks the profile
// onboarded. Returns an error if the values are invalid.
func (u *UserProfile) CompleteOnboarding(weightKg float64, sensitivity Sensitivity) error {
	if weightKg <= 0 {
		return ErrInvalidWeight
	}
	if !sensitivity.IsValid() {
		return ErrInvalidSensitivity
	}

	u.WeightKg = weightKg
	u.Sensitivity = sensitivity
	u.Onboarded = true
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// ResetOnboarding clears the onboarded flag so the client re-runs onboarding.
// Intake history is deliberately left untouched.
func (u *UserProfile) ResetOnboarding() {
	u.Onboarded = false
	u.UpdatedAt = time.Now().UTC()
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	// Check for a dot in the domain, but not immediately after @ and not at the end
	domainPart := email[atIndex+1:]
	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
