package handler

import (
	"net/http"
	"time"

	"github.com/sevigo/coderadar/internal/core"
)

const (
	HealthPath = "/ai/health"
	ReviewPath = "/ai/get-review"
)

// AvailableEndpoints lists every route the service answers.
var AvailableEndpoints = []string{
	"GET /",
	"GET " + HealthPath,
	"POST " + ReviewPath,
}

// HealthHandler serves the informational endpoints. None of them touch the
// LLM provider, so they report healthy regardless of upstream state.
type HealthHandler struct {
	model   string
	port    int
	version string
	now     func() time.Time
}

func NewHealthHandler(model string, port int, version string) *HealthHandler {
	return &HealthHandler{model: model, port: port, version: version, now: time.Now}
}

// Info serves GET /.
func (h *HealthHandler) Info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, core.ServiceInfo{
		Status:    "running",
		Message:   "Code Reviewer API",
		Version:   h.version,
		Port:      h.port,
		Timestamp: core.FormatTimestamp(h.now()),
		Endpoints: map[string]string{
			"health": HealthPath,
			"review": ReviewPath,
		},
	})
}

// AIHealth serves GET /ai/health.
func (h *HealthHandler) AIHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, core.HealthStatus{
		Success:   true,
		Message:   "AI service is operational",
		Timestamp: core.FormatTimestamp(h.now()),
		Model:     h.model,
	})
}

type notFoundResponse struct {
	Success            bool     `json:"success"`
	Error              string   `json:"error"`
	RequestedURL       string   `json:"requestedUrl"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// NotFound answers every unknown route, including known paths requested
// with the wrong method.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, notFoundResponse{
		Success:            false,
		Error:              "Route not found",
		RequestedURL:       r.URL.RequestURI(),
		AvailableEndpoints: AvailableEndpoints,
	})
}
