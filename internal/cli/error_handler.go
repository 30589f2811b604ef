package cli

import (
	stderrors "errors"
	"fmt"
	"strings"

	"todo-app/internal/errors"
	"todo-app/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages. Field errors are listed one per line.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if fields := fieldLines(err); fields != "" {
		return fmt.Errorf("failed to %s:\n%s", operation, fields)
	}

	if errors.IsAppError(err) {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

func fieldLines(err error) string {
	var ve *validation.ValidationError
	if !stderrors.As(err, &ve) || !ve.HasErrors() {
		return ""
	}

	lines := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		lines = append(lines, fmt.Sprintf("  %s: %s", fe.Field, fe.Message))
	}
	return strings.Join(lines, "\n")
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsTransportError checks if the server could not be reached
func (eh *ErrorHandler) IsTransportError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeTransport)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
