package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/coderadar/internal/config"
	"github.com/sevigo/coderadar/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: config.EnvProduction,
		Server: config.ServerConfig{
			Port:         5000,
			WriteTimeout: 120 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
	}
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockReviewer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reviewer := mocks.NewMockReviewer(ctrl)
	reviewer.EXPECT().ModelName().Return("groq/llama-3.3-70b-versatile").AnyTimes()
	return NewRouter(testConfig(), reviewer, slog.New(slog.NewTextHandler(io.Discard, nil))), reviewer
}

func TestRouter_HealthNeverCallsReviewer(t *testing.T) {
	router, reviewer := newTestRouter(t)
	reviewer.EXPECT().GenerateReview(gomock.Any(), gomock.Any()).Times(0)

	for _, path := range []string{"/", "/ai/health", "/ai/health/"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "Unknown path", method: http.MethodGet, path: "/nope"},
		{name: "Wrong method on review", method: http.MethodGet, path: "/ai/get-review"},
		{name: "Wrong method on health", method: http.MethodPost, path: "/ai/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, http.StatusNotFound, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Route not found", body["error"])
			assert.Equal(t, tt.path, body["requestedUrl"])
			assert.Len(t, body["availableEndpoints"], 3)
		})
	}
}

func TestRouter_Review(t *testing.T) {
	router, reviewer := newTestRouter(t)
	reviewer.EXPECT().GenerateReview(gomock.Any(), "console.log(1);").Return("looks fine", nil).Times(1)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/get-review", strings.NewReader(`{"code":"console.log(1);"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"codeLength":15`)
}
