// Package errors merges the stdlib error tree helpers with pkg/errors stack
// annotation so callers need a single import.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Unwrap(err error) error { return stderrors.Unwrap(err) }

func Join(errs ...error) error { return stderrors.Join(errs...) }

// IsAny reports whether err matches any of the targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}

// Wrap, Wrapf, WithStack and Errorf record a stack trace.

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

// WithMessage adds context without a stack trace.
func WithMessage(err error, message string) error { return pkgerrors.WithMessage(err, message) }

//nolint:wrapcheck // passthrough
func Cause(err error) error { return pkgerrors.Cause(err) }

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace formats the innermost recorded stack in err's chain, or returns
// "" when nothing in the chain carries one.
func StackTrace(err error) string {
	var frames pkgerrors.StackTrace
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			frames = st.StackTrace()
		}
	}
	if len(frames) == 0 {
		return ""
	}

	return fmt.Sprintf("%+v", frames)
}
