package core

import "time"

// ReviewRequest is the inbound payload of a review call.
type ReviewRequest struct {
	Code string `json:"code"`
}

// ReviewResult holds everything produced for a single review request.
// It lives only for the duration of that request.
type ReviewResult struct {
	ID               string
	ReviewText       string
	ProcessingTimeMs int64
	CodeLength       int
	Timestamp        time.Time
}
