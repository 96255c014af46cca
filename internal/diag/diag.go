// Package diag holds the error type shared by the grammar and ll packages.
// It separates a technical Error() string from a short operator-facing
// summary so that a tool driving the core (a CLI, a generator) can show
// something readable without re-deriving it from the technical message.
package diag

import (
	"errors"
	"fmt"
)

// Error is a failure raised by the analysis or transformation engine. Kind
// distinguishes the error classes the core defines (classification
// conflicts, unknown symbols, precondition violations) so callers can
// type-switch or compare without string matching.
type Error struct {
	Kind    Kind
	msg     string
	summary string
	wrap    error
}

// Kind enumerates the hard-failure categories the core can raise.
type Kind int

const (
	// KindClassificationConflict is raised when a symbol name is registered
	// under both the terminal and non-terminal tables, which the grammar's
	// invariants forbid.
	KindClassificationConflict Kind = iota
	// KindUnknownSymbol is raised when a name is looked up that is present
	// in neither the terminal nor the non-terminal table.
	KindUnknownSymbol
	// KindPrecondition is raised when an operation is invoked on a grammar
	// that has not been brought to the state the operation requires.
	KindPrecondition
)

func (e *Error) Error() string {
	return e.msg
}

// Summary gives the short, operator-facing description of the error.
func (e *Error) Summary() string {
	return e.summary
}

// Unwrap gives the error e wraps, if any.
func (e *Error) Unwrap() error {
	return e.wrap
}

// New builds an Error of the given kind with a technical message.
func New(kind Kind, format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	return &Error{Kind: kind, msg: msg, summary: msg}
}

// Wrap builds an Error of the given kind that wraps another error.
func Wrap(kind Kind, wrapped error, format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	return &Error{Kind: kind, msg: msg, summary: msg, wrap: wrapped}
}

// Summary returns the operator-facing summary of err if it is (or wraps) a
// *Error, or err.Error() otherwise.
func Summary(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Summary()
	}
	return err.Error()
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	de, ok := err.(*Error)
	return ok && de.Kind == kind
}
