package descriptor

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField marks a required descriptor field that is absent or empty.
	ErrMissingField = errors.New("required field missing")

	// ErrMalformedVersion marks a project version that fails semver grammar.
	ErrMalformedVersion = errors.New("malformed version")
)

// FieldError carries the offending field path and raw value alongside the
// underlying error kind.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s (%q): %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
