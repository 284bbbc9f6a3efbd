package models

import (
	"errors"
	"fmt"
	"strings"
)

// DecodeError is returned when a response body cannot be mapped onto its
// record type. No partially decoded record accompanies it.
type DecodeError struct {
	Resource string
	Field    string
	Reason   string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s: %s", e.Resource, e.Reason)
	}
	return fmt.Sprintf("decode %s: field %q: %s", e.Resource, e.Field, e.Reason)
}

// reasonMissing is the DecodeError reason for absent or null required fields.
const reasonMissing = "missing required field"

// IsMissingField reports whether the error names an absent required field.
func (e *DecodeError) IsMissingField() bool {
	return e.Reason == reasonMissing
}

// Violation is a single failed constraint on a request record.
type Violation struct {
	Field string
	Rule  string
	Param string
	Value any
}

func (v Violation) String() string {
	if v.Param == "" {
		return fmt.Sprintf("%s: failed %s", v.Field, v.Rule)
	}
	return fmt.Sprintf("%s: failed %s=%s", v.Field, v.Rule, v.Param)
}

// ValidationError lists every constraint a request record violates. It is
// raised before any network call.
type ValidationError struct {
	Request    string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("invalid %s: %s", e.Request, strings.Join(parts, "; "))
}

// Has reports whether field failed any rule.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// AsDecodeError returns the DecodeError in err's chain, if any.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr, true
	}
	return nil, false
}

// AsValidationError returns the ValidationError in err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
