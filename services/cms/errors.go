package cms

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the backend holds no record with the requested id.
	ErrNotFound = errors.New("cms: record not found")
	// ErrUnknownCollection is returned before any I/O for unregistered collection names.
	ErrUnknownCollection = errors.New("cms: unknown collection")
	// ErrInvalidID is returned for empty identifiers.
	ErrInvalidID = errors.New("cms: invalid record id")
)

// FetchError wraps any transport or parse failure.
type FetchError struct {
	Op         string
	Collection string
	ID         string
	Status     int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("cms %s %s", e.Op, e.Collection)
	if e.ID != "" {
		msg += "/" + e.ID
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	return msg + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
