package errors

import "fmt"

// ErrorCode represents a Reverie error code.
type ErrorCode string

const (
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"    // 400: caller contract violation
	ErrNotFound          ErrorCode = "NOT_FOUND"          // 404
	ErrPermissionDenied  ErrorCode = "PERMISSION_DENIED"  // 403: capture device permission
	ErrDeviceUnavailable ErrorCode = "DEVICE_UNAVAILABLE" // 503: capture device missing/busy
	ErrInternal          ErrorCode = "INTERNAL"           // 500
)

// ReverieError represents a structured error with code, status, and details.
type ReverieError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ReverieError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for out-of-contract input.
// This is a caller bug, not a user-facing condition; it aborts the
// operation rather than being swallowed.
func NewInvalidRequest(msg string) *ReverieError {
	return &ReverieError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when an entry cannot be found.
func NewNotFound(id string) *ReverieError {
	return &ReverieError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("entry not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewPermissionDenied creates a capture error for a denied device permission.
// Capture errors are user-facing and recoverable by retry.
func NewPermissionDenied(kind string) *ReverieError {
	return &ReverieError{
		Code:    ErrPermissionDenied,
		Status:  403,
		Message: fmt.Sprintf("%s capture permission denied", kind),
		Details: map[string]any{"kind": kind},
	}
}

// NewDeviceUnavailable creates a capture error for a missing or busy device.
func NewDeviceUnavailable(kind string) *ReverieError {
	return &ReverieError{
		Code:    ErrDeviceUnavailable,
		Status:  503,
		Message: fmt.Sprintf("%s capture device unavailable", kind),
		Details: map[string]any{"kind": kind},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *ReverieError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ReverieError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a ReverieError with the given code.
func Is(err error, code ErrorCode) bool {
	if rErr, ok := err.(*ReverieError); ok {
		return rErr.Code == code
	}
	return false
}

// IsCapture reports whether err is one of the capture error codes.
func IsCapture(err error) bool {
	return Is(err, ErrPermissionDenied) || Is(err, ErrDeviceUnavailable)
}
