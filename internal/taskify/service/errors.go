package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of these, so callers
// branch with errors.Is(err, ErrForbidden) and friends.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrConflict        = errors.New("conflict")
)

// Error is a failure the caller is allowed to see. Reason is written for the
// end user.
type Error struct {
	Kind   error
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func unauthenticated(format string, args ...any) error {
	return newError(ErrUnauthenticated, format, args...)
}

func forbidden(format string, args ...any) error { return newError(ErrForbidden, format, args...) }

func notFound(format string, args ...any) error { return newError(ErrNotFound, format, args...) }

func invalidState(format string, args ...any) error {
	return newError(ErrInvalidState, format, args...)
}

func invalidRequest(format string, args ...any) error {
	return newError(ErrInvalidRequest, format, args...)
}

func conflict(format string, args ...any) error { return newError(ErrConflict, format, args...) }

// Reasons shared between services.
const (
	reasonNotMember     = "you are not a member of this workspace"
	reasonInvitePending = "you have not accepted the invite to this workspace"
	reasonAlreadyMember = "user is already a member of this workspace"
)
