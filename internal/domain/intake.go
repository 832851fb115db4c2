package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Intake-specific validation errors
var (
	// ErrIntakeIDEmpty is returned when an intake record ID is empty or nil.
	ErrIntakeIDEmpty = errors.New("intake record ID cannot be empty")

	// ErrIntakeUserIDEmpty is returned when an intake record's user ID is empty or nil.
	ErrIntakeUserIDEmpty = errors.New("intake record user ID cannot be empty")

	// ErrIntakeDrinkNameEmpty is returned when an intake record's drink name is empty.
	ErrIntakeDrinkNameEmpty = errors.New("drink name cannot be empty")

	// ErrIntakeAmountInvalid is returned when the caffeine amount is zero or negative.
	ErrIntakeAmountInvalid = errors.New("caffeine amount must be greater than zero")

	// ErrIntakeTimestampZero is returned when the consumption timestamp is unset.
	ErrIntakeTimestampZero = errors.New("consumption timestamp cannot be zero")
)

// IntakeRecord represents a single logged caffeine intake event. Records are
// immutable once created; the only lifecycle operations are create and delete.
// A future-dated ConsumedAt is allowed and simply contributes nothing to the
// active level until that instant passes.
type IntakeRecord struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	DrinkName  string    `json:"drink_name"`
	AmountMg   float64   `json:"amount_mg"`
	ConsumedAt time.Time `json:"consumed_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewIntakeRecord creates a new IntakeRecord for the given user.
// It generates a new UUID for the record and sets the creation timestamp.
// Returns an error if validation fails.
func NewIntakeRecord(
	userID uuid.UUID,
	drinkName string,
	amountMg float64,
	consumedAt time.Time,
) (*IntakeRecord, error) {
	record := &IntakeRecord{
		ID:         uuid.New(),
		UserID:     userID,
		DrinkName:  drinkName,
		AmountMg:   amountMg,
		ConsumedAt: consumedAt.UTC(),
		CreatedAt:  time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the IntakeRecord has valid data.
// Returns an error if any field fails validation.
func (r *IntakeRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrIntakeIDEmpty
	}

	if r.UserID == uuid.Nil {
		return ErrIntakeUserIDEmpty
	}

	if r.DrinkName == "" {
		return ErrIntakeDrinkNameEmpty
	}

	if r.AmountMg <= 0 {
		return ErrIntakeAmountInvalid
	}

	if r.ConsumedAt.IsZero() {
		return ErrIntakeTimestampZero
	}

	return nil
}
