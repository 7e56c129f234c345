package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the upstream has no data for the requested resource.
var ErrNotFound = errors.New("not found")

// AuthError reports a failed client-credentials exchange with the campaign
// platform. Status is the upstream HTTP status, or 0 when the request never
// produced a response.
type AuthError struct {
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("authentication failed: %d", e.Status)
	}
	return "authentication failed: network error"
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError reports a failed upstream data fetch. Exactly one of Status,
// Timeout, or neither (plain network error) describes the cause.
type FetchError struct {
	Status  int
	Timeout bool
	Err     error
}

func (e *FetchError) Error() string {
	switch {
	case e.Timeout:
		return "api fetch error: timeout"
	case e.Status != 0:
		return fmt.Sprintf("api fetch error: %d", e.Status)
	default:
		return "api fetch error: network error"
	}
}

func (e *FetchError) Unwrap() error { return e.Err }
