package record

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the sentinel matched by every MalformedInputError.
var ErrMalformedInput = errors.New("malformed scenario tree input")

// MalformedInputError reports a record that is missing a required field or
// holds a field of the wrong shape.
type MalformedInputError struct {
	// Location of the offending record, see Record.Location.
	Location string
	// Field is the offending field name; empty when the record as a whole is
	// unusable (e.g. not an object).
	Field string
	// Err describes what is wrong with the field, if anything beyond absence.
	Err error
}

// Missing returns a MalformedInputError for an absent required field.
func Missing(location, field string) *MalformedInputError {
	return &MalformedInputError{Location: location, Field: field}
}

// Invalid returns a MalformedInputError for a field holding a bad value.
func Invalid(location, field string, err error) *MalformedInputError {
	return &MalformedInputError{Location: location, Field: field, Err: err}
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("record at %s: %v", e.Location, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("record at %s: missing required field %q", e.Location, e.Field)
	default:
		return fmt.Sprintf("record at %s: invalid field %q: %v", e.Location, e.Field, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedInput) match.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
