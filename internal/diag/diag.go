// Package diag defines the small error taxonomy every layer of this
// module reports through: input validation, I/O, allocation and
// invariant failures. Every one of them is fatal to the run that hit
// it, but keeping them distinct lets the CLI and tests tell them apart
// without parsing messages.
package diag

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// InputInvalid means the input text itself violates a precondition
	// (empty, contains the reserved sentinel byte, and so on).
	InputInvalid Kind = iota
	// IOFailure means a read or write against the outside world failed.
	IOFailure
	// Allocation means a size computation overflowed or a buffer could
	// not be sized as required.
	Allocation
	// Invariant means an internal assumption the algorithm relies on
	// did not hold; seeing one always indicates a bug, not bad input.
	Invariant
)

func (k Kind) String() string {
	switch k {
	case InputInvalid:
		return "input invalid"
	case IOFailure:
		return "I/O failure"
	case Allocation:
		return "allocation failure"
	case Invariant:
		return "invariant violation"
	default:
		return "unknown error"
	}
}

// Error pairs a Kind with the underlying, stack-traced error from
// github.com/pkg/errors. It implements Unwrap so stdlib errors.As/Is
// still see through to the wrapped cause.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Newf builds a new Error of the given Kind with a formatted message
// and an attached stack trace.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, err: pkgerrors.Errorf(format, args...)}
}

// Wrap attaches a Kind and a message to an existing error, preserving
// it as the unwrap chain's cause.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: pkgerrors.Wrap(err, message)}
}

// KindOf extracts the Kind from err, if err (or something it wraps) is
// a *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// ExitCode maps any error from this module to the process exit code the
// CLI should use. Every Kind is fatal and exits 1; the distinction
// between kinds is for diagnostics, not for differentiating exit codes.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
