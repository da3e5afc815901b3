package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a DomainError with the same code.
// This lets errors.Is(err, ErrDataUnavailable) match wrapped instances.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapDomainError creates a domain error carrying the given cause
func WrapDomainError(code, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error codes
const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeDataUnavailable = "DATA_UNAVAILABLE"
)

// Common domain errors
var (
	ErrNotFound        = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidArgument = NewDomainError(CodeInvalidArgument, "Invalid argument")
	ErrDataUnavailable = NewDomainError(CodeDataUnavailable, "Backing data store unavailable")
)

// InvalidArgument returns an INVALID_ARGUMENT error with a specific message
func InvalidArgument(message string) *DomainError {
	return NewDomainError(CodeInvalidArgument, message)
}

// DataUnavailable wraps a backing-store failure
func DataUnavailable(message string, cause error) *DomainError {
	return WrapDomainError(CodeDataUnavailable, message, cause)
}
