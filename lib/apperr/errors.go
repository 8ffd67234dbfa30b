package apperr

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

type Kind int

const (
	Internal Kind = iota
	Validation
	NotFound
	Precondition
	Authorization
	Authentication
	Unavailable
)

var kindName = map[Kind]string{
	Internal:       "internal",
	Validation:     "validation",
	NotFound:       "not_found",
	Precondition:   "precondition",
	Authorization:  "authorization",
	Authentication: "authentication",
	Unavailable:    "unavailable",
}

func (k Kind) String() string {
	return kindName[k]
}

// Error is a failure with a message that is safe to show to the caller.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, message string) error {
	return errors.WithStack(&Error{Kind: kind, Message: message})
}

func NewValidation(message string) error {
	return newError(Validation, message)
}

func NewNotFound(message string) error {
	return newError(NotFound, message)
}

func NewPrecondition(message string) error {
	return newError(Precondition, message)
}

func NewAuthorization(message string) error {
	return newError(Authorization, message)
}

func NewAuthentication(message string) error {
	return newError(Authentication, message)
}

func NewUnavailable(message string) error {
	return newError(Unavailable, message)
}

// NewInternal wraps an unexpected failure; message is what the caller sees, cause is only logged.
func NewInternal(cause error, message string) error {
	return errors.WithStack(&Error{Kind: Internal, Message: message, cause: cause})
}

// KindOf returns the kind of the first *Error in the chain, Internal otherwise.
func KindOf(err error) Kind {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

// MessageOf returns the caller-facing message; errors outside the taxonomy get fallback.
func MessageOf(err error, fallback string) string {
	var appErr *Error
	if stderrors.As(err, &appErr) && appErr.Kind != Internal {
		return appErr.Message
	}
	return fallback
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
