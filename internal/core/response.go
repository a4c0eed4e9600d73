package core

import (
	"fmt"
	"time"
)

// ReviewMetadata describes how a review was produced.
type ReviewMetadata struct {
	ProcessingTime   string `json:"processingTime" yaml:"processingTime"`
	ProcessingTimeMs int64  `json:"processingTimeMs" yaml:"processingTimeMs"`
	CodeLength       int    `json:"codeLength" yaml:"codeLength"`
	Timestamp        string `json:"timestamp" yaml:"timestamp"`
	ReviewID         string `json:"reviewId,omitempty" yaml:"reviewId,omitempty"`
}

// ReviewResponse is the JSON body returned by the review endpoint on success.
type ReviewResponse struct {
	Success  bool            `json:"success" yaml:"success"`
	Review   string          `json:"review" yaml:"review"`
	Metadata *ReviewMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ErrorResponse is the JSON body returned by every failing endpoint.
type ErrorResponse struct {
	Success bool   `json:"success" yaml:"success"`
	Error   string `json:"error" yaml:"error"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// HealthStatus is the body of the AI health endpoint.
type HealthStatus struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"model"`
}

// ServiceInfo is the body of the root info endpoint.
type ServiceInfo struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Port      int               `json:"port"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

// NewReviewResponse shapes a ReviewResult into the wire response.
func NewReviewResponse(res *ReviewResult) *ReviewResponse {
	return &ReviewResponse{
		Success: true,
		Review:  res.ReviewText,
		Metadata: &ReviewMetadata{
			ProcessingTime:   fmt.Sprintf("%dms", res.ProcessingTimeMs),
			ProcessingTimeMs: res.ProcessingTimeMs,
			CodeLength:       res.CodeLength,
			Timestamp:        FormatTimestamp(res.Timestamp),
			ReviewID:         res.ID,
		},
	}
}

// FormatTimestamp renders t as an ISO-8601 UTC timestamp with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
