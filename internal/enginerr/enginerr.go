// Package enginerr defines the three boundary error kinds from spec.md
// §7. Only parse/serialize operations at the edge of the core can fail;
// every internal operation saturates or clamps instead. Kinds are
// wrapped with github.com/pkg/errors so callers can both switch on Kind
// and unwrap to the underlying cause (typically an encoding/json error).
package enginerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which boundary operation failed.
type Kind string

const (
	// InvalidConfig: textual configuration fails to parse or is missing
	// required fields.
	InvalidConfig Kind = "InvalidConfig"
	// SignalProcessing: a signal payload fails to parse or references
	// an unknown event variant.
	SignalProcessing Kind = "SignalProcessing"
	// Serialization: encoding an output back to the host fails.
	Serialization Kind = "Serialization"
)

// Error is a typed boundary failure. err already carries msg (via
// errors.Wrap/errors.New), so Error() does not repeat it.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.kind, e.err)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.err }

// Kind returns the error's taxonomy kind.
func (e *Error) Kind() Kind { return e.kind }

// Wrap builds a new boundary Error of the given kind, wrapping cause
// with github.com/pkg/errors.Wrap, which records a stack trace at the
// wrap point. The cause stays reachable through Unwrap (errors.Is and
// errors.As); Error itself has no Cause method.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{kind: kind, err: errors.Wrap(cause, msg)}
}

// New builds a boundary Error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, err: errors.New(msg)}
}

// Is reports whether err is a boundary Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}
