package models

import (
	"errors"
	"fmt"
)

// Session and authorization errors
var (
	// ErrNotAuthenticated is returned when an operation requires a session token and none is stored
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrSessionExpired is returned when the backend rejects the stored token; the session has already been cleared
	ErrSessionExpired = errors.New("session expired")

	// ErrAccessDenied is returned when the authenticated user does not hold the admin role
	ErrAccessDenied = errors.New("access denied: admin privileges required")

	// ErrNoToken is returned when a login response carries no authentication token
	ErrNoToken = errors.New("no authentication token found in server response")
)

// Validation errors
var (
	// ErrInvalidStatus is returned when a project status transition names an unknown status
	ErrInvalidStatus = errors.New("invalid project status")

	// ErrInvalidCategory is returned when a gallery category is not one of the known set
	ErrInvalidCategory = errors.New("invalid gallery category")
)

// APIError carries a backend failure unchanged to the caller: the HTTP
// status, the backend's message, and the originating path.
type APIError struct {
	StatusCode int
	Message    string
	Path       string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request to %s failed with status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed with status %d: %s", e.Path, e.StatusCode, e.Message)
}
