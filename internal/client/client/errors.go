package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means no response was received.
	ErrUnavailable = errors.New("server unavailable")
	// ErrTimeout means the request deadline passed before a response.
	ErrTimeout = errors.New("request timed out")
	// ErrUnauthorized matches any 401 response.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a response with status >= 400.
type APIError struct {
	StatusCode int
	// Detail is the server-supplied message, possibly empty.
	Detail string
	// Fields holds per-field validation messages of a 422 response.
	Fields map[string]string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Detail returns the server message carried by err, if any.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
