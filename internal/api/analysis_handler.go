package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/joltlabs/jolt-api/internal/api/shared"
	"github.com/joltlabs/jolt-api/internal/service"
)

// Default timeline parameters. The window runs from six hours back to twelve
// hours ahead so clients get the recent curve plus the projected decay.
const (
	defaultTimelineBackHours  = 6
	defaultTimelineAheadHours = 12
	defaultTimelineStepMin    = 5

	// maxTimelineSamples caps how many points a single timeline request may
	// materialize: a week of one-minute samples. The window and step are
	// client-supplied, so the bound keeps one request from allocating an
	// arbitrarily large curve.
	maxTimelineSamples = 7 * 24 * 60
)

// AnalysisHandler handles caffeine analysis API requests. The reference time
// is resolved here, once per request, so a single response is internally
// consistent.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	timeFunc        func() time.Time // Injectable for testing
}

// NewAnalysisHandler creates a new AnalysisHandler with the given dependencies.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		timeFunc:        time.Now,
	}
}

// Current handles GET /analysis/current.
func (h *AnalysisHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	now := h.timeFunc().UTC()
	activeMg, err := h.analysisService.CurrentLevel(r.Context(), userID, now)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CurrentLevelResponse{
		ActiveMg: activeMg,
		At:       now,
	})
}

// Timeline handles GET /analysis/timeline. Optional query parameters:
// "start" and "end" (RFC 3339) bound the window, "step" sets the sample
// spacing in minutes. Requests whose window and step would materialize more
// than maxTimelineSamples points are rejected.
func (h *AnalysisHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	now := h.timeFunc().UTC()
	start := now.Add(-defaultTimelineBackHours * time.Hour)
	end := now.Add(defaultTimelineAheadHours * time.Hour)
	stepMinutes := defaultTimelineStepMin

	query := r.URL.Query()
	if raw := query.Get("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid 'start' timestamp")
			return
		}
		start = parsed
	}
	if raw := query.Get("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid 'end' timestamp")
			return
		}
		end = parsed
	}
	if raw := query.Get("step"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid 'step' value")
			return
		}
		stepMinutes = parsed
	}

	if !start.After(end) {
		samples := int64(end.Sub(start)/time.Minute)/int64(stepMinutes) + 1
		if samples > maxTimelineSamples {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"Timeline window too large for the requested step")
			return
		}
	}

	levels, err := h.analysisService.Timeline(r.Context(), userID, start, end, stepMinutes)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	points := make([]TimelinePointResponse, 0, len(levels))
	for _, level := range levels {
		points = append(points, TimelinePointResponse{
			Timestamp: level.Timestamp,
			ActiveMg:  level.ActiveMg,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TimelineResponse{Levels: points})
}

// Peak handles GET /analysis/peak.
func (h *AnalysisHandler) Peak(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	peak, err := h.analysisService.Peak(r.Context(), userID, h.timeFunc().UTC())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var resp PeakResponse
	if peak != nil {
		resp.Time = &peak.Time
		resp.AmountMg = &peak.AmountMg
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Crash handles GET /analysis/crash. An absent crash_time in the response
// means no crash is predicted, which is a normal outcome rather than an error.
func (h *AnalysisHandler) Crash(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	crashTime, err := h.analysisService.PredictCrash(r.Context(), userID, h.timeFunc().UTC())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CrashResponse{CrashTime: crashTime})
}
