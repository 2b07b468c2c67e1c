package apperr

import (
	"errors"
	"strings"
)

// Kind classifies an error for the HTTP boundary. Services return errors
// wrapped with a Kind; handlers map kinds to status codes with a fixed
// table and never branch on error strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindInvalidCredentials
	KindUnauthorized
	KindForbidden
	KindNotFound
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// New builds a classified error with a caller-facing message.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap classifies an underlying error. The message is what callers see;
// the wrapped error stays server-side.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

// KindOf extracts the Kind from an error chain. Unclassified errors are
// internal, so nothing unexpected ever leaks details to a client.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	var v *ValidationError
	if errors.As(err, &v) {
		return KindValidation
	}
	return KindInternal
}

// ValidationError carries every violated rule, not just the first one.
type ValidationError struct {
	Violations []string
}

func (v *ValidationError) Error() string {
	return "validation failed: " + strings.Join(v.Violations, "; ")
}

// Validation returns nil when there are no violations.
func Validation(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
