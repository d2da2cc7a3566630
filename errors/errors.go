package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Input errors
	ErrorTypeNotFound ErrorType = "not_found"
	ErrorTypeDecode   ErrorType = "decode"
	ErrorTypeEmpty    ErrorType = "empty_input"

	// Output errors
	ErrorTypeEncode       ErrorType = "encode"
	ErrorTypeVerification ErrorType = "verification"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// System errors
	ErrorTypeInternal ErrorType = "internal"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	InnerError error                  `json:"-"`
	ExitStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.InnerError != nil {
		return e.InnerError.Error()
	}
	return string(e.Type)
}

// Unwrap returns the inner error
func (e *AppError) Unwrap() error {
	return e.InnerError
}

// WithMessage adds a message to the error
func (e *AppError) WithMessage(msg string) *AppError {
	e.Message = msg
	return e
}

// WithCode adds a code to the error
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithExitStatus sets the process exit status
func (e *AppError) WithExitStatus(status int) *AppError {
	e.ExitStatus = status
	return e
}

// WithInnerError sets the inner error
func (e *AppError) WithInnerError(err error) *AppError {
	e.InnerError = err
	return e
}

// Is checks if this error is of a specific type
func (e *AppError) Is(target error) bool {
	if targetApp, ok := target.(*AppError); ok {
		return e.Type == targetApp.Type
	}
	return false
}

// New creates a new AppError
func New(errType ErrorType, message string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Code:       string(errType),
		ExitStatus: 1,
	}
}

// FromError converts a standard error to AppError
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Type:       ErrorTypeUnknown,
		Message:    err.Error(),
		InnerError: err,
		ExitStatus: 1,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *AppError {
	return FromError(err).WithMessage(message)
}

// WrapWithType wraps an error with a specific type
func WrapWithType(err error, errType ErrorType, message string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		InnerError: err,
		Code:       string(errType),
		ExitStatus: 1,
	}
}

// Input errors
func NewNotFound(resource, path string) *AppError {
	return New(ErrorTypeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource).
		WithDetail("path", path)
}

func NewDecode(path string, err error) *AppError {
	return WrapWithType(err, ErrorTypeDecode, fmt.Sprintf("failed to decode %s", path)).
		WithDetail("path", path)
}

func NewEmptyInput(dir string) *AppError {
	return New(ErrorTypeEmpty, "no source images found to convert").
		WithDetail("dir", dir)
}

// Output errors
func NewEncode(path string, err error) *AppError {
	return WrapWithType(err, ErrorTypeEncode, fmt.Sprintf("failed to encode %s", path)).
		WithDetail("path", path)
}

func NewVerification(path string) *AppError {
	return New(ErrorTypeVerification, fmt.Sprintf("failed to create %s", path)).
		WithDetail("path", path)
}

// Configuration errors
func NewConfig(message string) *AppError {
	return New(ErrorTypeConfig, message)
}

// System errors
func NewInternal(message string) *AppError {
	return New(ErrorTypeInternal, message)
}

// ExitCode returns the process exit status for an error.
// A nil error maps to 0, a plain error to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	appErr := FromError(err)
	if appErr.ExitStatus > 0 {
		return appErr.ExitStatus
	}
	return 1
}

// Format formats an error for diagnostic output
func Format(err error) string {
	if err == nil {
		return ""
	}

	appErr := FromError(err)

	parts := []string{fmt.Sprintf("[%s] %s", appErr.Type, appErr.Message)}

	if appErr.Code != "" && appErr.Code != string(appErr.Type) {
		parts = append(parts, fmt.Sprintf("code=%s", appErr.Code))
	}

	for k, v := range appErr.Details {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}

	if appErr.InnerError != nil {
		parts = append(parts, "caused_by: "+appErr.InnerError.Error())
	}

	return strings.Join(parts, " | ")
}
