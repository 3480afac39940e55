package qdrant

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind discriminates the failure classes surfaced by this layer.
// Callers pattern-match on the kind instead of parsing message text.
type ErrorKind string

const (
	// KindNotFound - a referenced collection or point does not exist.
	KindNotFound ErrorKind = "not_found"

	// KindValidation - malformed input caught before any backend call.
	KindValidation ErrorKind = "validation"

	// KindPrecondition - a required safeguard was not satisfied, e.g.
	// deletion without confirmation.
	KindPrecondition ErrorKind = "precondition"

	// KindBackend - any other backend-reported failure, wrapped with
	// operation context but not re-interpreted.
	KindBackend ErrorKind = "backend"
)

// Error carries a failure kind alongside a single-sentence, user-facing
// message. Internal identifiers and stack traces never end up in Message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validationf builds a validation-kind error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Preconditionf builds a precondition-kind error.
func Preconditionf(format string, args ...any) *Error {
	return &Error{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found-kind error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind, defaulting to KindBackend for errors
// that did not originate in this layer.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindBackend
}

// backendError wraps a backend failure with operation context. Missing
// collections surface as gRPC NotFound from Qdrant; those are mapped to
// KindNotFound so callers can distinguish them from real failures.
func backendError(op, collection string, err error) error {
	if isNotFound(err) {
		if collection != "" {
			return NotFoundf("collection '%s' not found", collection)
		}
		return NotFoundf("%s: resource not found", op)
	}
	msg := fmt.Sprintf("failed to %s", op)
	if collection != "" {
		msg = fmt.Sprintf("%s for collection '%s'", msg, collection)
	}
	return &Error{Kind: KindBackend, Message: fmt.Sprintf("%s: %s", msg, backendMessage(err))}
}

func isNotFound(err error) bool {
	if st, ok := status.FromError(err); ok && st.Code() == codes.NotFound {
		return true
	}
	return strings.Contains(err.Error(), "doesn't exist")
}

// backendMessage strips the gRPC status envelope from backend errors so
// the message that crosses the boundary stays a readable sentence.
func backendMessage(err error) string {
	if st, ok := status.FromError(err); ok && st.Code() != codes.OK {
		return st.Message()
	}
	return err.Error()
}
