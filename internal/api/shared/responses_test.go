package shared

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, req, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Invalid request format", resp.Error)
	assert.Len(t, resp.TraceID, TraceIDLength*2)
}

func TestErrorResponseCodeNotSerialized(t *testing.T) {
	body, err := json.Marshal(ErrorResponse{Error: "boom", Code: 500})
	require.NoError(t, err)
	assert.NotContains(t, string(body), "500")
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(
		http.MethodPost, "/test", bytes.NewReader([]byte(`{"name":"espresso"}`)))

	var got payload
	require.NoError(t, DecodeJSON(req, &got))
	assert.Equal(t, "espresso", got.Name)
}

func TestDecodeJSONMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("{not json"))

	var got map[string]any
	assert.Error(t, DecodeJSON(req, &got))
}

func TestGenerateTraceIDUniqueness(t *testing.T) {
	a := generateTraceID()
	b := generateTraceID()

	assert.Len(t, a, TraceIDLength*2)
	assert.NotEqual(t, a, b)
}
