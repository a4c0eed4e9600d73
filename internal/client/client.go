// Package client is a small HTTP client for the CodeRadar review API. It is
// used by the command-line tool and mirrors the behaviour of the web client:
// a short timeout for status checks, a long one for reviews, and failures
// reported as human-readable text.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/coderadar/internal/core"
)

const (
	DefaultBaseURL       = "http://localhost:5000"
	DefaultStatusTimeout = 3 * time.Second
	DefaultReviewTimeout = 60 * time.Second
)

// FailureKind tells apart the ways a call to the service can fail.
type FailureKind int

const (
	// FailureServer means the service answered with an error payload.
	FailureServer FailureKind = iota
	// FailureNoResponse means the service could not be reached.
	FailureNoResponse
	// FailureTimeout means the service did not answer in time.
	FailureTimeout
	// FailureOther covers everything else, e.g. an unreadable response.
	FailureOther
)

// Error is a failed call to the review service.
type Error struct {
	Kind       FailureKind
	StatusCode int
	Message    string
	BaseURL    string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case FailureServer:
		return "Server error: " + e.Message
	case FailureNoResponse:
		return "No response from server. Make sure the backend is running on " + e.BaseURL
	case FailureTimeout:
		return "Request timed out. The code might be too long or server is busy."
	default:
		if e.Message != "" {
			return e.Message
		}
		if e.Err != nil {
			return e.Err.Error()
		}
		return "Unknown error occurred"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client calls the review API.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	statusTimeout time.Duration
	reviewTimeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithReviewTimeout overrides the timeout for review requests.
func WithReviewTimeout(d time.Duration) Option {
	return func(c *Client) { c.reviewTimeout = d }
}

// WithStatusTimeout overrides the timeout for status requests.
func WithStatusTimeout(d time.Duration) Option {
	return func(c *Client) { c.statusTimeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{},
		statusTimeout: DefaultStatusTimeout,
		reviewTimeout: DefaultReviewTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Info fetches the service info from GET /.
func (c *Client) Info(ctx context.Context) (*core.ServiceInfo, error) {
	var info core.ServiceInfo
	if err := c.do(ctx, c.statusTimeout, http.MethodGet, "/", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Health fetches GET /ai/health.
func (c *Client) Health(ctx context.Context) (*core.HealthStatus, error) {
	var health core.HealthStatus
	if err := c.do(ctx, c.statusTimeout, http.MethodGet, "/ai/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Review submits code for review.
func (c *Client) Review(ctx context.Context, code string) (*core.ReviewResponse, error) {
	var resp core.ReviewResponse
	if err := c.do(ctx, c.reviewTimeout, http.MethodPost, "/ai/get-review", core.ReviewRequest{Code: code}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &Error{Kind: FailureServer, Message: "Failed to get review", BaseURL: c.baseURL}
	}
	return &resp, nil
}

// State summarizes the reachability of the service.
type State string

const (
	StateConnected    State = "connected"
	StateError        State = "error"
	StateDisconnected State = "disconnected"
)

// StatusReport is the outcome of CheckStatus.
type StatusReport struct {
	State     State
	Info      *core.ServiceInfo
	Health    *core.HealthStatus
	InfoErr   error
	HealthErr error
}

// CheckStatus queries the info and health endpoints concurrently. The
// service counts as connected when the info endpoint reports "running".
func (c *Client) CheckStatus(ctx context.Context) *StatusReport {
	report := &StatusReport{}

	var g errgroup.Group
	g.Go(func() error {
		report.Info, report.InfoErr = c.Info(ctx)
		return nil
	})
	g.Go(func() error {
		report.Health, report.HealthErr = c.Health(ctx)
		return nil
	})
	_ = g.Wait()

	switch {
	case report.InfoErr != nil:
		var apiErr *Error
		if errors.As(report.InfoErr, &apiErr) && apiErr.Kind == FailureServer {
			report.State = StateError
		} else {
			report.State = StateDisconnected
		}
	case report.Info.Status == "running":
		report.State = StateConnected
	default:
		report.State = StateError
	}
	return report
}

func (c *Client) do(ctx context.Context, timeout time.Duration, method, path string, in, out any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: FailureOther, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Kind: FailureOther, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return c.transportError(err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var errBody core.ErrorResponse
		message := res.Status
		if json.Unmarshal(data, &errBody) == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &Error{Kind: FailureServer, StatusCode: res.StatusCode, Message: message, BaseURL: c.baseURL}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: FailureOther, StatusCode: res.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func (c *Client) transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: FailureTimeout, BaseURL: c.baseURL, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: FailureTimeout, BaseURL: c.baseURL, Err: err}
	}
	return &Error{Kind: FailureNoResponse, BaseURL: c.baseURL, Err: err}
}
