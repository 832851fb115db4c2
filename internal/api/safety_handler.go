package api

import (
	"net/http"
	"time"

	"github.com/joltlabs/jolt-api/internal/api/shared"
	"github.com/joltlabs/jolt-api/internal/service"
)

// SafetyHandler handles dose safety check API requests.
type SafetyHandler struct {
	analysisService service.AnalysisService
	timeFunc        func() time.Time // Injectable for testing
}

// NewSafetyHandler creates a new SafetyHandler with the given dependencies.
func NewSafetyHandler(analysisService service.AnalysisService) *SafetyHandler {
	return &SafetyHandler{
		analysisService: analysisService,
		timeFunc:        time.Now,
	}
}

// Check handles POST /safety/check. It evaluates a prospective dose against
// the user's daily intake; a response with warning=false means the dose is
// within limits.
func (h *SafetyHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req SafetyCheckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	assessment, err := h.analysisService.CheckSafety(r.Context(), userID, req.AmountMg, h.timeFunc().UTC())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if assessment == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, SafetyCheckResponse{Warning: false})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SafetyCheckResponse{
		Warning:        true,
		Tier:           string(assessment.Tier),
		SingleDoseMg:   &assessment.SingleDoseMg,
		TotalMg:        &assessment.TotalMg,
		DailyLimitMg:   &assessment.DailyLimitMg,
		WarningLevelMg: &assessment.WarningLevelMg,
		DangerLevelMg:  &assessment.DangerLevelMg,
		RemainingMg:    &assessment.RemainingMg,
	})
}
