package api

import (
	"net/http"

	"github.com/joltlabs/jolt-api/internal/api/shared"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/service"
)

// ProfileHandler handles profile-related API requests.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// toProfileResponse maps a domain profile to its API representation.
func toProfileResponse(user *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		WeightKg:    user.WeightKg,
		Sensitivity: string(user.Sensitivity),
		Onboarded:   user.Onboarded,
	}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toProfileResponse(user))
}

// Update handles PUT /profile. Setting weight and sensitivity completes
// onboarding if it has not been completed yet.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.profileService.CompleteOnboarding(
		r.Context(),
		userID,
		req.WeightKg,
		domain.Sensitivity(req.Sensitivity),
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toProfileResponse(user))
}

// Reset handles POST /profile/reset. It clears the onboarded flag without
// touching intake history.
func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.profileService.ResetOnboarding(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toProfileResponse(user))
}
