// internal/engine/errors.go
package engine

import (
	"errors"
	"fmt"
)

// Common engine errors
var (
	ErrBrowserNotFound = errors.New("chrome browser not found")
	ErrTimeout         = errors.New("request timeout")
	ErrInvalidURL      = errors.New("invalid URL")
	ErrRestrictedURL   = errors.New("restricted URL scheme")
	ErrNetworkError    = errors.New("network error")
	ErrParseError      = errors.New("failed to parse response")
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	ErrCodeTimeout      ErrorCode = "TIMEOUT"
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeRestricted   ErrorCode = "RESTRICTED"
	ErrCodeNetworkError ErrorCode = "NETWORK_ERROR"
	ErrCodeParseError   ErrorCode = "PARSE_ERROR"
	ErrCodeBrowserCrash ErrorCode = "BROWSER_CRASH"
)

// ScanError wraps a failed scan with a code the presentation layer can map
// to a distinct user-facing message: an unreachable page, a restricted page,
// and a generic extraction fault each read differently to the user.
type ScanError struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Retry      bool
}

// Error implements the error interface
func (e *ScanError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *ScanError) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *ScanError) Is(target error) bool {
	if t, ok := target.(*ScanError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewScanError creates a new ScanError
func NewScanError(code ErrorCode, message string, err error) *ScanError {
	return &ScanError{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

// WithRetry marks the error as retryable
func (e *ScanError) WithRetry() *ScanError {
	e.Retry = true
	return e
}
