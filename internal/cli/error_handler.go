package cli

import (
	"fmt"
	"io"

	"weather-export/internal/errors"
	"weather-export/internal/logging"
)

const (
	errorPrefix  = "[ERROR]"
	failedPrefix = "[FAILED] Export did not complete:"
)

// ErrorHandler turns pipeline errors into operator messages
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Format returns the single diagnostic line for err. Input problems are
// reported as [ERROR], everything later in the pipeline as [FAILED].
func (eh *ErrorHandler) Format(err error) string {
	if eh.IsValidationError(err) {
		return fmt.Sprintf("%s %s", errorPrefix, errors.GetUserMessage(err))
	}
	return fmt.Sprintf("%s %s", failedPrefix, errors.GetUserMessage(err))
}

// Report writes the diagnostic for err to w and logs the cause when it
// is a system fault.
func (eh *ErrorHandler) Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	if errors.ShouldLogError(err) {
		logging.Errorw(eh.logMessage(err),
			"code", eh.GetErrorCode(err),
			"error", err,
		)
	}
	fmt.Fprintln(w, eh.Format(err))
}

func (eh *ErrorHandler) logMessage(err error) string {
	switch {
	case eh.IsStoreError(err):
		return "reading weather store failed"
	case eh.IsWriteError(err):
		return "writing CSV export failed"
	default:
		return "export failed"
	}
}

// IsValidationError checks if an error came from operator input
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return errors.IsValidationError(err)
}

// IsStoreError checks if an error is a store error
func (eh *ErrorHandler) IsStoreError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStore)
}

// IsWriteError checks if an error is a write error
func (eh *ErrorHandler) IsWriteError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeWrite)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
