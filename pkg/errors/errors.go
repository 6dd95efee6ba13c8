package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrMalformedEntry ErrorCode = "MALFORMED_ENTRY"

	// Entry set errors
	ErrDuplicateEntry ErrorCode = "DUPLICATE_ENTRY"

	// Resolution errors
	ErrCyclicDependency     ErrorCode = "CYCLIC_DEPENDENCY"
	ErrUnresolvedDependency ErrorCode = "UNRESOLVED_DEPENDENCY"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// MdotError represents a structured error with code and details
type MdotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MdotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MdotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MdotError) Is(target error) bool {
	var targetErr *MdotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MdotError with the given code and message
func New(code ErrorCode, message string) *MdotError {
	return &MdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MdotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MdotError {
	return &MdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MdotError
func Wrap(err error, code ErrorCode, message string) *MdotError {
	if err == nil {
		return nil
	}
	return &MdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MdotError {
	if err == nil {
		return nil
	}
	return &MdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MdotError) WithDetail(key string, value interface{}) *MdotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mdotErr *MdotError
	if errors.As(err, &mdotErr) {
		return mdotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MdotError
func GetErrorCode(err error) ErrorCode {
	var mdotErr *MdotError
	if errors.As(err, &mdotErr) {
		return mdotErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MdotError
func GetErrorDetails(err error) map[string]interface{} {
	var mdotErr *MdotError
	if errors.As(err, &mdotErr) {
		return mdotErr.Details
	}
	return nil
}
