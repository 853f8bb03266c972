package model

import (
	"errors"
	"fmt"
	"net/http"
)

// SanitizedError is the only error shape that crosses the service boundary.
// It never carries upstream response bodies, header values or tokens.
type SanitizedError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (x *SanitizedError) Error() string {
	return x.Message
}

// SanitizeUpstream maps an upstream HTTP failure to a fixed outward status
// and generic message. The raw body is accepted so callers can hand over
// whatever they read, but it is deliberately never inspected or forwarded.
func SanitizeUpstream(statusCode int, _ string) *SanitizedError {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &SanitizedError{StatusCode: http.StatusForbidden, Message: "insufficient permission"}
	case http.StatusNotFound:
		return &SanitizedError{StatusCode: http.StatusNotFound, Message: "not found"}
	case http.StatusUnprocessableEntity:
		return &SanitizedError{StatusCode: http.StatusBadRequest, Message: "invalid request"}
	default:
		return &SanitizedError{StatusCode: http.StatusBadGateway, Message: "upstream error"}
	}
}

// SanitizeGeneral collapses any local failure (parse error, network error,
// programming error) to a generic 500 so internal state never leaks.
func SanitizeGeneral(_ error) *SanitizedError {
	return &SanitizedError{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
}

// UpstreamError marks a non-success upstream response inside an error chain.
// Only the status code is carried across the boundary; the response body
// stays in the infra layer.
type UpstreamError struct {
	StatusCode int
}

func (x *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d", x.StatusCode)
}

// SanitizeError routes an arbitrary error to the right sanitizer: upstream
// failures keep their status mapping, already-sanitized errors pass through,
// everything else collapses to a generic 500.
func SanitizeError(err error) *SanitizedError {
	var sanitized *SanitizedError
	if errors.As(err, &sanitized) {
		return sanitized
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return SanitizeUpstream(upstream.StatusCode, "")
	}
	return SanitizeGeneral(err)
}
