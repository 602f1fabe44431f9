package api

import "fmt"

// Standard JSON-RPC error codes
const (
	ErrParseError     = -32700
	ErrInvalidRequest = -32600
	ErrMethodNotFound = -32601
	ErrInvalidParams  = -32602
	ErrInternalError  = -32603
	ErrServerError    = -32000
	ErrNotFound       = -32004
)

// Error represents an API error
type Error struct {
	Code    int
	Message string
}

// NewError creates a new API error
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NotFoundError builds a not-found error for the named resource
func NotFoundError(resource, id string) *Error {
	return NewError(ErrNotFound, fmt.Sprintf("%s %s not found", resource, id))
}

// InvalidParamsError builds an invalid-params error
func InvalidParamsError(message string) *Error {
	return NewError(ErrInvalidParams, message)
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}
