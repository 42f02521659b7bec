package pokeapi

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnavailable      = errors.New("pokeapi unavailable")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrDecode           = errors.New("malformed response body")
)

// Error wraps a failed call with the operation and resource it was for.
type Error struct {
	Op       string
	Resource string
	Status   int
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("pokeapi %s %q", e.Op, e.Resource)
	if e.Status != 0 {
		base += fmt.Sprintf(" (status=%d)", e.Status)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// IsRetryable reports whether err came from a network failure or an overloaded
// upstream rather than from the request itself.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
