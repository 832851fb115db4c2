package api

import (
	"errors"
	"net/http"

	"github.com/joltlabs/jolt-api/internal/api/shared"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/domain/caffeine"
	"github.com/joltlabs/jolt-api/internal/service"
	"github.com/joltlabs/jolt-api/internal/service/auth"
	"github.com/joltlabs/jolt-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrIntakeNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidSensitivity),
		errors.Is(err, domain.ErrInvalidWeight),
		errors.Is(err, domain.ErrIntakeDrinkNameEmpty),
		errors.Is(err, domain.ErrIntakeAmountInvalid),
		errors.Is(err, domain.ErrIntakeTimestampZero),
		errors.Is(err, caffeine.ErrInvalidStep),
		errors.Is(err, caffeine.ErrInvalidWindow),
		errors.Is(err, caffeine.ErrNegativeAmount),
		errors.Is(err, caffeine.ErrInvalidDose),
		errors.Is(err, caffeine.ErrInvalidTotal),
		errors.Is(err, caffeine.ErrInvalidBodyWeight):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this intake record"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrIntakeNotFound):
		return "Intake record not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidSensitivity):
		return "Invalid sensitivity"

	case errors.Is(err, domain.ErrInvalidWeight):
		return "Invalid body weight"

	case errors.Is(err, domain.ErrIntakeDrinkNameEmpty),
		errors.Is(err, domain.ErrIntakeAmountInvalid),
		errors.Is(err, domain.ErrIntakeTimestampZero):
		return "Invalid intake data"

	case errors.Is(err, caffeine.ErrInvalidStep),
		errors.Is(err, caffeine.ErrInvalidWindow):
		return "Invalid timeline parameters"

	case errors.Is(err, caffeine.ErrInvalidDose),
		errors.Is(err, caffeine.ErrInvalidTotal),
		errors.Is(err, caffeine.ErrInvalidBodyWeight):
		return "Invalid safety check inputs"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid request data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message and writes
// the response. A non-empty defaultMsg overrides the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if defaultMsg != "" {
		message = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
