package errors

import (
	"errors"
	"fmt"
)

const (
	// MsgDateFormat is shown when a date does not match YYYY/MM/DD
	MsgDateFormat = "Date must be in YYYY/MM/DD format"
	// MsgRangeOrder is shown when the ending date precedes the starting date
	MsgRangeOrder = "Ending date must be after starting date"
)

// NewFormatError creates an error for a date string that is not YYYY/MM/DD
func NewFormatError(field string, value string) *AppError {
	return &AppError{
		Type:    ErrorTypeFormat,
		Message: MsgDateFormat,
		Code:    "INVALID_DATE_FORMAT",
		Context: map[string]interface{}{
			"field": field,
			"value": value,
		},
	}
}

// NewRangeOrderError creates an error for an end date earlier than the start date
func NewRangeOrderError(start, end string) *AppError {
	return &AppError{
		Type:    ErrorTypeRangeOrder,
		Message: MsgRangeOrder,
		Code:    "INVALID_DATE_RANGE",
		Context: map[string]interface{}{
			"start": start,
			"end":   end,
		},
	}
}

// NewStoreError creates an error for a failed store open, ping, query or scan
func NewStoreError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStore,
		Message: fmt.Sprintf("store operation failed: %s", operation),
		Code:    "STORE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewWriteError creates an error for a filesystem failure while producing the export
func NewWriteError(operation string, path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeWrite,
		Message: fmt.Sprintf("write operation failed: %s", operation),
		Code:    "WRITE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
			"path":      path,
		},
	}
}

// NewConfigError creates a configuration error for the named field
func NewConfigError(field string, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: fmt.Sprintf("%s: %s", field, message),
		Code:    "CONFIG_ERROR",
		Context: map[string]interface{}{
			"field": field,
		},
	}
}

// NewInputError creates an error for a failed read of operator input
func NewInputError(cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: "failed to read input",
		Code:    "INPUT_ERROR",
		Cause:   cause,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsValidationError reports whether err was raised while checking operator input
func IsValidationError(err error) bool {
	return IsErrorType(err, ErrorTypeFormat) || IsErrorType(err, ErrorTypeRangeOrder)
}

// GetUserMessage returns the operator-facing message. Store and write
// failures never expose the underlying driver or filesystem error.
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeFormat, ErrorTypeRangeOrder, ErrorTypeConfig:
			return appErr.Message
		case ErrorTypeStore:
			return "unable to read weather store" + operationSuffix(appErr)
		case ErrorTypeWrite:
			return "unable to write CSV file" + operationSuffix(appErr)
		case ErrorTypeInput:
			return "unable to read date input"
		default:
			return "an unexpected error occurred"
		}
	}
	return "an unexpected error occurred"
}

func operationSuffix(appErr *AppError) string {
	if op, ok := appErr.GetContext("operation"); ok {
		return fmt.Sprintf(" (%v)", op)
	}
	return ""
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ExitCode returns the process exit status for err. Every failure kind
// terminates with status 1; nil means success.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeFormat, ErrorTypeRangeOrder:
			return false // operator input, not a system fault
		default:
			return true
		}
	}
	return true
}
