package tba

import (
	"errors"
	"fmt"

	"bluealliance-client/lib/batch"
)

var (
	// ErrMissingAPIKey is returned by NewClient when no API key was given
	// and neither TBA_API_KEY nor API_KEY is set in the environment.
	ErrMissingAPIKey = errors.New("tba: missing API key")
	// ErrNotFound wraps a 404 from the API.
	ErrNotFound = errors.New("tba: resource not found")
	// ErrUnauthorized wraps a 400/401 from the API, usually a bad key.
	ErrUnauthorized = errors.New("tba: unauthorized")
	// ErrEmptyResult is returned by aggregate helpers over empty collections.
	ErrEmptyResult = batch.ErrEmpty
)

// ValidationError reports a malformed key or argument, detected before any
// request is issued.
type ValidationError struct {
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tba: invalid %q: %s", e.Value, e.Reason)
}

// RequestError reports a transport-level failure: the request never completed
// or the response body could not be decoded.
type RequestError struct {
	Path string
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("tba: request %s: %v", e.Path, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response from the API. It matches ErrNotFound
// on 404 and ErrUnauthorized on 400/401 through errors.Is.
type StatusError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tba: %s returned status %d: %s", e.Path, e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrUnauthorized:
		return e.StatusCode == 400 || e.StatusCode == 401
	}
	return false
}
