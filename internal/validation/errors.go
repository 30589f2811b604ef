package validation

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrorType represents the rule a field violated
type ValidationErrorType string

const (
	ErrorTypeRequired  ValidationErrorType = "required"
	ErrorTypeTooShort  ValidationErrorType = "too_short"
	ErrorTypeTooLong   ValidationErrorType = "too_long"
	ErrorTypeInThePast ValidationErrorType = "in_the_past"
	// ErrorTypeInvalid is used for violations reported by the server whose rule is not known locally.
	ErrorTypeInvalid ValidationErrorType = "invalid"
)

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}

	if len(ve.Errors) == 1 {
		return ve.Errors[0].Error()
	}

	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// HasErrors returns true if the ValidationError has any errors
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// AddError adds a new field error to the validation error
func (ve *ValidationError) AddError(field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: message,
		Value:   value,
	})
}

// NewValidationError creates a new ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{
		Errors: make([]FieldError, 0),
	}
}

// FromFields rebuilds a ValidationError from a field → message map, such as the
// "errors" member of a problem response. Fields are ordered by name.
func FromFields(fields map[string]string) *ValidationError {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	ve := NewValidationError()
	for _, name := range names {
		ve.AddError(name, typeForMessage(fields[name]), fields[name], nil)
	}
	return ve
}

// Fields returns field name → message, keeping the first message reported per field
func (ve *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(ve.Errors))
	for _, err := range ve.Errors {
		if _, exists := fields[err.Field]; !exists {
			fields[err.Field] = err.Message
		}
	}
	return fields
}

// GetFieldErrors returns all errors for a specific field
func (ve *ValidationError) GetFieldErrors(field string) []FieldError {
	var fieldErrors []FieldError
	for _, err := range ve.Errors {
		if err.Field == field {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

func typeForMessage(message string) ValidationErrorType {
	switch message {
	case MsgTitleRequired:
		return ErrorTypeRequired
	case MsgTitleTooShort:
		return ErrorTypeTooShort
	case MsgTitleTooLong, MsgDescriptionTooLong:
		return ErrorTypeTooLong
	case MsgDueDateInThePast:
		return ErrorTypeInThePast
	default:
		return ErrorTypeInvalid
	}
}
