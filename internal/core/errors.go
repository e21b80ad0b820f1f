package core

import (
	"errors"
	"fmt"
)

var (
	ErrNoActiveProfile = errors.New("no active profile selected")
	ErrNoSession       = errors.New("not logged in, run `growdash login` first")
)

// ValidationError is a local, recoverable input problem. It never reaches
// the network; the form keeps its state and the user corrects the field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// TransportError wraps a failed API call: a network error or a non-success
// HTTP status. Recoverable, never retried automatically, and it never
// corrupts cached state.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}
