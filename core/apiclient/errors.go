package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport is returned when no response was received at all
	// (connection refused, timeout, DNS failure). Joined with the
	// underlying error for inspection.
	ErrTransport = errors.New("transport failure")

	// ErrUnauthorized matches any *APIError with status 401 via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMissingBaseURL is returned by New when the base URL is absent or
	// unparseable.
	ErrMissingBaseURL = errors.New("api base URL is required")
)

// FieldDetail describes a single invalid field in a validation error.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx backend response. The message comes from the backend
// error body when present, otherwise from a status-keyed default.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details []FieldDetail
	TraceID string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Is makes errors.Is(err, ErrUnauthorized) true for 401 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// apiErrorEnvelope mirrors the backend's error body:
// {"error": {"code", "message", "details", "trace_id"}}
type apiErrorEnvelope struct {
	Error struct {
		Code    string        `json:"code"`
		Message string        `json:"message"`
		Details []FieldDetail `json:"details"`
		TraceID string        `json:"trace_id"`
	} `json:"error"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var env apiErrorEnvelope
	if len(body) > 0 && json.Unmarshal(body, &env) == nil && env.Error.Message != "" {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
		apiErr.TraceID = env.Error.TraceID
		return apiErr
	}

	apiErr.Message = defaultMessage(status)
	return apiErr
}

var defaultMessages = map[int]string{
	http.StatusBadRequest:          "invalid request",
	http.StatusUnauthorized:        "not authorized, please sign in",
	http.StatusForbidden:           "access denied",
	http.StatusNotFound:            "resource not found",
	http.StatusConflict:            "resource already exists",
	http.StatusUnprocessableEntity: "invalid data",
	http.StatusTooManyRequests:     "too many requests, try again later",
	http.StatusInternalServerError: "server error, try again later",
	http.StatusBadGateway:          "service temporarily unavailable",
	http.StatusServiceUnavailable:  "service unavailable",
}

func defaultMessage(status int) string {
	if msg, ok := defaultMessages[status]; ok {
		return msg
	}
	return "an unexpected error occurred"
}
