package compound

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable validation error kind.
type Kind string

const (
	// InvalidAmount is a negative or unparsable principal, contribution or rate.
	InvalidAmount Kind = "INVALID_AMOUNT"
	// InvalidYears is a number of years below 1, or unparsable.
	InvalidYears Kind = "INVALID_YEARS"
	// YearsOutOfRange is a number of years above MaxYears.
	YearsOutOfRange Kind = "YEARS_OUT_OF_RANGE"
	// InvalidFrequency is a contribution or compounding frequency outside {1, 12}.
	InvalidFrequency Kind = "INVALID_FREQUENCY"
)

// Sentinel errors to be used with errors.Is.
var (
	ErrInvalidAmount    = &Error{Kind: InvalidAmount}
	ErrInvalidYears     = &Error{Kind: InvalidYears}
	ErrYearsOutOfRange  = &Error{Kind: YearsOutOfRange}
	ErrInvalidFrequency = &Error{Kind: InvalidFrequency}
)

// Error is a projection input error.
type Error struct {
	Kind  Kind
	Field string // name of the offending input field, if any
	Value string // offending value as received
	Err   error  // underlying parse error, if any
}

func newError(kind Kind, field string, value any) *Error {
	return &Error{Kind: kind, Field: field, Value: fmt.Sprint(value)}
}

func (e *Error) Error() string {
	msg := e.message()
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s %q", msg, e.Field, e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) message() string {
	switch e.Kind {
	case InvalidAmount:
		return "invalid amount"
	case InvalidYears:
		return "invalid number of years"
	case YearsOutOfRange:
		return fmt.Sprintf("number of years exceeds the maximum of %d", MaxYears)
	case InvalidFrequency:
		return "invalid frequency, must be 1 (annually) or 12 (monthly)"
	default:
		return "invalid projection input"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so that errors.Is(err, ErrInvalidYears) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of err, or "" if err is not a projection error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
