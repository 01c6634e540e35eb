package guard

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classifying every guard failure. Use errors.Is to detect
// the failure kind regardless of which guard produced it.
var (
	// ErrNilArgument is returned when a required value or bound is nil.
	ErrNilArgument = errors.New("argument is nil")

	// ErrInvalidArgument is returned when a present value fails a structural
	// check (empty, blank, zero, or a condition with the wrong polarity).
	ErrInvalidArgument = errors.New("argument is invalid")

	// ErrOutOfRange is returned when a present value violates an ordering or
	// range constraint.
	ErrOutOfRange = errors.New("argument is out of range")

	// ErrInvalidOperation is returned when object or runtime state, rather
	// than a specific argument, fails a condition check.
	ErrInvalidOperation = errors.New("operation is invalid")
)

// Detail is a single diagnostic key/value pair attached to an Error.
type Detail struct {
	Key   string
	Value any
}

// Error describes one failed precondition check. It wraps one of the
// sentinel errors above, so callers can classify failures with errors.Is
// while still reaching the structured fields via errors.As.
type Error struct {
	// Name is the argument name passed to the guard. Empty for operation
	// guards and for names that were blank at the call site.
	Name string

	// Message is the optional caller-supplied explanation, passed through
	// unchanged. Empty when none was supplied.
	Message string

	// Value holds the offending value for range failures, nil otherwise.
	Value any

	// Details are the diagnostic pairs supplied via WithDetail, in insertion
	// order. Nil when no pairs were supplied.
	Details []Detail

	sentinel error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.sentinel.Error())
	if e.Name != "" {
		b.WriteString(": ")
		b.WriteString(e.Name)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %v)", e.Value)
	}
	return b.String()
}

// Unwrap exposes the classification sentinel for errors.Is.
func (e *Error) Unwrap() error {
	return e.sentinel
}

// Detail returns the value of the first diagnostic pair with the given key.
func (e *Error) Detail(key string) (any, bool) {
	for _, d := range e.Details {
		if d.Key == key {
			return d.Value, true
		}
	}
	return nil, false
}

// normalize drops names and messages that carry no information, so blank
// identifiers are never embedded into an error.
func normalize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

func newError(sentinel error, name string, o options) *Error {
	e := &Error{
		Name:     normalize(name),
		Message:  normalize(o.message),
		sentinel: sentinel,
	}
	if len(o.details) > 0 {
		e.Details = append([]Detail(nil), o.details...)
	}
	return e
}

func newRangeError(name string, value any, o options) *Error {
	e := newError(ErrOutOfRange, name, o)
	e.Value = value
	return e
}
