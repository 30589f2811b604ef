package validation

import (
	"time"

	"todo-app/internal/domain"
)

const (
	TitleMinLength       = 3
	TitleMaxLength       = 200
	DescriptionMaxLength = 2000
)

// Field names as they appear on the wire
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "dueDate"
)

const (
	MsgTitleRequired      = "Title is required."
	MsgTitleTooShort      = "Title must be at least 3 characters."
	MsgTitleTooLong       = "Title cannot exceed 200 characters."
	MsgDescriptionTooLong = "Description cannot exceed 2000 characters."
	MsgDueDateInThePast   = "Due date cannot be in the past."
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithClock creates a task validator whose due date rule uses now()
func NewTaskValidatorWithClock(now func() time.Time) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithClock(now),
	}
}

// ValidateTask evaluates every rule against the candidate fields and reports all violations
func (tv *TaskValidator) ValidateTask(title string, description *string, dueDate *time.Time) error {
	return tv.validate(title, description, dueDate, true)
}

// ValidateForCreate validates a create request, including the due date rule
func (tv *TaskValidator) ValidateForCreate(req domain.TaskCreateRequest) error {
	return tv.validate(req.Title, req.Description, req.DueDate, true)
}

// ValidateForUpdate validates an update request. A past due date is accepted on update.
func (tv *TaskValidator) ValidateForUpdate(req domain.TaskUpdateRequest) error {
	return tv.validate(req.Title, req.Description, req.DueDate, false)
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddError("id", ErrorTypeInvalid, "id must be a positive integer", id)
		return validationError
	}
	return nil
}

func (tv *TaskValidator) validate(title string, description *string, dueDate *time.Time, checkDueDate bool) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)
	switch {
	case !tv.validator.IsNonEmptyString(trimmed):
		validationError.AddError(FieldTitle, ErrorTypeRequired, MsgTitleRequired, title)
	case tv.validator.Length(trimmed) < TitleMinLength:
		validationError.AddError(FieldTitle, ErrorTypeTooShort, MsgTitleTooShort, title)
	case tv.validator.Length(trimmed) > TitleMaxLength:
		validationError.AddError(FieldTitle, ErrorTypeTooLong, MsgTitleTooLong, title)
	}

	if description != nil && tv.validator.Length(*description) > DescriptionMaxLength {
		validationError.AddError(FieldDescription, ErrorTypeTooLong, MsgDescriptionTooLong, *description)
	}

	if checkDueDate && dueDate != nil && tv.validator.IsInThePast(*dueDate) {
		validationError.AddError(FieldDueDate, ErrorTypeInThePast, MsgDueDateInThePast, *dueDate)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
