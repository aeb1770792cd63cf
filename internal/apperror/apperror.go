// Package apperror defines the failure taxonomy shared by services and
// handlers. Services return *AppError values; the handler layer is the
// only place they are turned into response envelopes.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application failure.
type Kind int

const (
	// KindDatabase is any persistence failure. Logged with detail,
	// reported to the client generically.
	KindDatabase Kind = iota
	// KindNotFound means the requested entity does not exist.
	KindNotFound
	// KindUnauthorized covers missing/invalid/expired credentials and
	// failed logins. Deliberately indistinct.
	KindUnauthorized
	// KindForbidden means the caller is authenticated but acting on a
	// resource it does not own.
	KindForbidden
	// KindValidation is a business-rule violation with a user-facing
	// message.
	KindValidation
	// KindInternal is an unexpected fatal failure (e.g. hashing).
	KindInternal
	// KindJwt is a token signing or verification failure.
	KindJwt
)

// AppError carries a failure kind, a user-facing message and an
// optional wrapped cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// BusinessCode returns the envelope code for the failure. These pair
// with the fixed code-to-HTTP-status map in the model package.
func (e *AppError) BusinessCode() int {
	switch e.Kind {
	case KindNotFound:
		return 404
	case KindUnauthorized, KindJwt:
		return 401
	case KindForbidden:
		return 403
	case KindValidation:
		return 400
	default:
		return 500
	}
}

// ClientMessage is the message shown to the caller. Database and
// internal failures are reported generically; the detail stays in the
// server log.
func (e *AppError) ClientMessage() string {
	switch e.Kind {
	case KindDatabase:
		return "database operation failed"
	case KindInternal:
		return "internal server error"
	default:
		return e.Message
	}
}

func newError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewDatabaseError(message string, err error) *AppError {
	return newError(KindDatabase, message, err)
}

func NewNotFoundError(message string) *AppError {
	return newError(KindNotFound, message, nil)
}

func NewUnauthorizedError(message string) *AppError {
	return newError(KindUnauthorized, message, nil)
}

func NewForbiddenError(message string) *AppError {
	return newError(KindForbidden, message, nil)
}

func NewValidationError(message string) *AppError {
	return newError(KindValidation, message, nil)
}

func NewInternalError(message string, err error) *AppError {
	return newError(KindInternal, message, err)
}

func NewJwtError(message string, err error) *AppError {
	return newError(KindJwt, message, err)
}

// From extracts an *AppError from err, wrapping anything unexpected as
// an internal failure so no error escapes the taxonomy.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("internal server error", err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
