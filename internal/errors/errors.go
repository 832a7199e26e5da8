package errors

import (
	"fmt"
)

// Messages shared between handlers and middleware. Clients match on these strings.
const (
	MsgNoToken       = "No token provided"
	MsgInvalidToken  = "Invalid token"
	MsgInternalError = "Internal server error"
)

// APIError is an error that knows how it should be rendered to a client.
// Only Message is sent; Code and Details stay server-side for logging.
type APIError struct {
	Code    ErrorCode
	Message string
	Details string
	Status  int
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Body returns the JSON body sent to clients
func (e *APIError) Body() map[string]string {
	return map[string]string{"error": e.Message}
}

func newError(code ErrorCode, message string) *APIError {
	return &APIError{Code: code, Message: message, Status: code.StatusCode()}
}

// NotFound creates a NOT_FOUND error, e.g. NotFound("Post") -> "Post not found"
func NotFound(resource string) *APIError {
	return newError(ErrNotFound, fmt.Sprintf("%s not found", resource))
}

// Unauthorized creates an UNAUTHORIZED error
func Unauthorized(message string) *APIError {
	return newError(ErrUnauthorized, message)
}

// BadRequest creates a BAD_REQUEST error. Validation failures use it too.
func BadRequest(message string) *APIError {
	return newError(ErrBadRequest, message)
}

// Conflict creates a CONFLICT error
func Conflict(message string) *APIError {
	return newError(ErrConflict, message)
}

// InternalError creates an INTERNAL_ERROR. The message is always the generic one;
// the cause goes into Details, which is never rendered.
func InternalError(cause string) *APIError {
	return newError(ErrInternalError, MsgInternalError).WithDetails(cause)
}

// RateLimited creates a RATE_LIMITED error
func RateLimited(message string) *APIError {
	if message == "" {
		message = "rate limit exceeded"
	}
	return newError(ErrRateLimited, message)
}

// ServiceUnavailable creates a SERVICE_UNAVAILABLE error
func ServiceUnavailable(service string) *APIError {
	return newError(ErrServiceUnavail, fmt.Sprintf("%s is temporarily unavailable", service))
}

// WithDetails adds additional details to an error
func (e *APIError) WithDetails(details string) *APIError {
	e.Details = details
	return e
}
