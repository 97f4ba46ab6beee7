// Package httperr carries the error taxonomy shared by all handlers and
// maps each kind to an HTTP status in one place.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a handler-level failure.
type Kind int

const (
	KindPermissionDenied Kind = iota
	KindValidation
	KindNotFound
	KindTransport
)

// Error pairs a kind with a caller-facing message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// PermissionDenied builds a role-failure error.
func PermissionDenied(msg string) *Error {
	return &Error{Kind: KindPermissionDenied, Msg: msg}
}

// Validation builds a bad-input error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound builds a missing-record (or zero-matches) error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Transport wraps a storage or network failure. The cause is kept for
// logs but never retried — callers re-attempt manually.
func Transport(msg string, cause error) *Error {
	return &Error{Kind: KindTransport, Msg: msg, Err: cause}
}

// Status maps a kind to its HTTP status code.
func Status(k Kind) int {
	switch k {
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes the JSON error response for err and stops the handler
// chain. Unclassified errors are treated as transport failures.
func Abort(c *gin.Context, err error) {
	var he *Error
	if !errors.As(err, &he) {
		he = Transport("internal error", err)
	}
	c.AbortWithStatusJSON(Status(he.Kind), gin.H{"error": he.Msg})
}
