package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRule is returned when a navigation rule violates its invariants.
var ErrInvalidRule = errors.New("invalid navigation rule")

// ErrInvalidRequest is returned when a resolution request is missing
// required fields.
var ErrInvalidRequest = errors.New("invalid resolution request")

// ErrNoPersistedSource is returned by admin operations when no writable
// rule source is configured.
var ErrNoPersistedSource = errors.New("no persisted rule source configured")

// SourceUnavailableError reports that a rule source failed to answer a
// query (store error, timeout). It is deliberately distinct from an
// unresolved verdict so the two are never conflated.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("rule source %q unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// IsSourceUnavailable reports whether err wraps a SourceUnavailableError.
func IsSourceUnavailable(err error) bool {
	var target *SourceUnavailableError
	return errors.As(err, &target)
}
