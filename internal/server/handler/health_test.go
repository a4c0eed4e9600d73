package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/coderadar/internal/core"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
}

func TestHealthHandler_Info(t *testing.T) {
	h := NewHealthHandler("groq/llama-3.3-70b-versatile", 5000, "1.0.0")
	h.now = fixedClock

	rec := httptest.NewRecorder()
	h.Info(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body core.ServiceInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "running", body.Status)
	assert.Equal(t, "Code Reviewer API", body.Message)
	assert.Equal(t, "1.0.0", body.Version)
	assert.Equal(t, 5000, body.Port)
	assert.Equal(t, "2024-01-02T03:04:05.006Z", body.Timestamp)
	assert.Equal(t, map[string]string{"health": "/ai/health", "review": "/ai/get-review"}, body.Endpoints)
}

func TestHealthHandler_AIHealth(t *testing.T) {
	h := NewHealthHandler("gemini/gemini-2.5-flash", 5000, "1.0.0")
	h.now = fixedClock

	rec := httptest.NewRecorder()
	h.AIHealth(rec, httptest.NewRequest(http.MethodGet, HealthPath, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body core.HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "AI service is operational", body.Message)
	assert.Equal(t, "gemini/gemini-2.5-flash", body.Model)
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope?x=1", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["error"])
	assert.Equal(t, "/nope?x=1", body["requestedUrl"])
	assert.Equal(t, []any{"GET /", "GET /ai/health", "POST /ai/get-review"}, body["availableEndpoints"])
}
