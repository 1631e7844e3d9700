package errors

import (
	"fmt"
	"strings"
)

// AppError is the unified error type crossing the shield boundary.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCode retags the error with a different code, updating the recommended
// HTTP status to match, and returns the receiver.
func (e *AppError) WithCode(code ErrorCode) *AppError {
	e.Code = code
	e.HTTPStatus = HTTPStatusFor(code)
	return e
}

// Path returns the dotted procedure path attached to a denial, or "".
func (e *AppError) Path() string {
	if p, ok := e.Details["path"].(string); ok {
		return p
	}
	return ""
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: HTTPStatusFor(code),
	}
}

// --- Common Error Constructors ---

// Denied creates the first-class negative outcome of an authorization
// decision. The procedure path is recorded as a dotted string under the
// "path" detail key.
func Denied(message string, path []string) *AppError {
	return New(ErrCodeForbidden, message).WithDetail("path", strings.Join(path, "."))
}

// Unauthorized creates an AppError for an unauthenticated caller.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Authentication required."
	}
	return New(ErrCodeUnauthorized, message)
}

// InvalidTree creates the construction-time error for a malformed rule tree,
// naming the dotted path of the offending entry.
func InvalidTree(path, reason string) *AppError {
	return New(ErrCodeInvalidRuleTree, fmt.Sprintf("invalid rule tree at %q: %s", path, reason)).
		WithDetail("path", path)
}

// Internal creates an AppError for an unexpected internal failure.
func Internal(err error) *AppError {
	return New(ErrCodeInternal, "An internal error occurred.").WithCause(err)
}
