package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a review failure. The kind, not the message,
// decides the HTTP status a failure is reported with.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindConfig      ErrorKind = "config"
	KindRateLimited ErrorKind = "rate_limited"
	KindNetwork     ErrorKind = "network"
	KindInternal    ErrorKind = "internal"
)

// ReviewError is a classified failure of the review pipeline.
type ReviewError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

// NewReviewError builds a ReviewError of the given kind.
func NewReviewError(kind ErrorKind, err error, format string, args ...any) *ReviewError {
	return &ReviewError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the classification of err. Errors that were never
// classified are internal.
func KindOf(err error) ErrorKind {
	var re *ReviewError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindInternal
}
