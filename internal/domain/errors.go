package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthenticationMissing is returned when a request carries no bearer credential.
	ErrAuthenticationMissing = errors.New("not authenticated")
	// ErrAuthenticationInvalid is returned when GitHub rejects the credential.
	ErrAuthenticationInvalid = errors.New("invalid token")
	// ErrNotFound is returned when the requested resource does not exist or is not visible.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPRNumber is returned for a missing or non-positive pull request number.
	ErrInvalidPRNumber = errors.New("invalid pull request number")
	// ErrInvalidRepository is returned when owner or repository name is empty.
	ErrInvalidRepository = errors.New("owner and repository are required")
)

// UpstreamError is a failed call against the GitHub API.
// StatusCode is the upstream HTTP status, 0 when the call never got a response.
type UpstreamError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to %s: upstream status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrNotFound and ErrAuthenticationInvalid by status code.
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrAuthenticationInvalid:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}
