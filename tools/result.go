package tools

import (
	"github.com/vectorops/qdrant-admin/qdrant"
)

// Result is the uniform envelope every operation returns. Exactly one of
// Data or Error is populated; Status discriminates. Failures additionally
// carry the machine-readable error kind so callers pattern-match instead
// of parsing message text.
type Result struct {
	Status string           `json:"status"`
	Data   any              `json:"data,omitempty"`
	Error  string           `json:"error,omitempty"`
	Kind   qdrant.ErrorKind `json:"error_kind,omitempty"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Success wraps an operation payload.
func Success(data any) Result {
	return Result{Status: statusSuccess, Data: data}
}

// Failure converts any error into the error envelope. The message is the
// error's own single-sentence text; kinds default to backend for errors
// that did not originate in the adapter layer.
func Failure(err error) Result {
	return Result{
		Status: statusError,
		Error:  err.Error(),
		Kind:   qdrant.KindOf(err),
	}
}

// OK reports whether the envelope carries a success.
func (r Result) OK() bool {
	return r.Status == statusSuccess
}
