package api

import (
	"net/http"
	"time"

	"github.com/joltlabs/jolt-api/internal/api/shared"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/service"
)

// IntakeHandler handles intake log API requests.
type IntakeHandler struct {
	intakeService service.IntakeService
}

// NewIntakeHandler creates a new IntakeHandler with the given dependencies.
func NewIntakeHandler(intakeService service.IntakeService) *IntakeHandler {
	return &IntakeHandler{
		intakeService: intakeService,
	}
}

// toIntakeResponse maps a domain record to its API representation.
func toIntakeResponse(record *domain.IntakeRecord) IntakeResponse {
	return IntakeResponse{
		ID:         record.ID,
		DrinkName:  record.DrinkName,
		AmountMg:   record.AmountMg,
		ConsumedAt: record.ConsumedAt,
		CreatedAt:  record.CreatedAt,
	}
}

// Create handles POST /intakes.
func (h *IntakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req LogIntakeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.intakeService.LogIntake(r.Context(), userID, req.DrinkName, req.AmountMg, req.ConsumedAt)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toIntakeResponse(record))
}

// List handles GET /intakes. An optional "since" query parameter (RFC 3339)
// narrows the window; it defaults to the trailing 24 hours.
func (h *IntakeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	since := time.Now().UTC().Add(-24 * time.Hour)
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid 'since' timestamp")
			return
		}
		since = parsed
	}

	records, err := h.intakeService.ListIntakes(r.Context(), userID, since)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	intakes := make([]IntakeResponse, 0, len(records))
	for _, record := range records {
		intakes = append(intakes, toIntakeResponse(record))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, IntakeListResponse{Intakes: intakes})
}

// Delete handles DELETE /intakes/{id}.
func (h *IntakeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	recordID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.intakeService.DeleteIntake(r.Context(), userID, recordID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Presets handles GET /intakes/presets. The list is static and identical for
// every user.
func (h *IntakeHandler) Presets(w http.ResponseWriter, r *http.Request) {
	presets := make([]PresetResponse, 0, len(domain.DrinkPresets))
	for _, preset := range domain.DrinkPresets {
		presets = append(presets, PresetResponse{
			Name:     preset.Name,
			AmountMg: preset.AmountMg,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PresetListResponse{Presets: presets})
}
