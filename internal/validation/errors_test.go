package validation

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "title", Message: MsgTitleRequired}}, "validation error for field 'title': Title is required."},
		{"Multiple errors", []FieldError{
			{Field: "title", Message: MsgTitleTooShort},
			{Field: "dueDate", Message: MsgDueDateInThePast},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else {
				if result != tt.expectError {
					t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
				}
			}
		})
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected bool
	}{
		{"No errors", []FieldError{}, false},
		{"Has errors", []FieldError{{Field: "title", Message: MsgTitleRequired}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			if result := ve.HasErrors(); result != tt.expected {
				t.Errorf("ValidationError.HasErrors() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestValidationError_AddError(t *testing.T) {
	ve := NewValidationError()

	ve.AddError("title", ErrorTypeRequired, MsgTitleRequired, "")

	if len(ve.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(ve.Errors))
	}
	if ve.Errors[0].Field != "title" {
		t.Errorf("Expected field 'title', got %s", ve.Errors[0].Field)
	}
	if ve.Errors[0].Type != ErrorTypeRequired {
		t.Errorf("Expected error type %v, got %v", ErrorTypeRequired, ve.Errors[0].Type)
	}
}

func TestValidationError_Fields(t *testing.T) {
	ve := NewValidationError()
	ve.AddError("title", ErrorTypeTooShort, MsgTitleTooShort, "Hi")
	ve.AddError("title", ErrorTypeInvalid, "second message", "Hi")
	ve.AddError("description", ErrorTypeTooLong, MsgDescriptionTooLong, nil)

	fields := ve.Fields()

	if len(fields) != 2 {
		t.Fatalf("Fields() returned %d entries, want 2", len(fields))
	}
	if fields["title"] != MsgTitleTooShort {
		t.Errorf("Fields()[title] = %q, want the first message %q", fields["title"], MsgTitleTooShort)
	}
	if fields["description"] != MsgDescriptionTooLong {
		t.Errorf("Fields()[description] = %q, want %q", fields["description"], MsgDescriptionTooLong)
	}
}

func TestFromFields(t *testing.T) {
	ve := FromFields(map[string]string{
		"title":   MsgTitleTooShort,
		"dueDate": MsgDueDateInThePast,
		"other":   "Something the server knows about.",
	})

	if len(ve.Errors) != 3 {
		t.Fatalf("FromFields() produced %d errors, want 3", len(ve.Errors))
	}

	// ordered by field name
	wantOrder := []string{"dueDate", "other", "title"}
	for i, field := range wantOrder {
		if ve.Errors[i].Field != field {
			t.Errorf("Errors[%d].Field = %s, want %s", i, ve.Errors[i].Field, field)
		}
	}

	wantTypes := map[string]ValidationErrorType{
		"dueDate": ErrorTypeInThePast,
		"other":   ErrorTypeInvalid,
		"title":   ErrorTypeTooShort,
	}
	for _, fe := range ve.Errors {
		if fe.Type != wantTypes[fe.Field] {
			t.Errorf("type for %s = %v, want %v", fe.Field, fe.Type, wantTypes[fe.Field])
		}
	}
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddError("title", ErrorTypeTooLong, MsgTitleTooLong, nil)
	ve.AddError("description", ErrorTypeTooLong, MsgDescriptionTooLong, nil)

	titleErrors := ve.GetFieldErrors("title")
	if len(titleErrors) != 1 {
		t.Errorf("Expected 1 title error, got %d", len(titleErrors))
	}
	if len(ve.GetFieldErrors("dueDate")) != 0 {
		t.Errorf("Expected no dueDate errors")
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(NewValidationError()) {
		t.Error("IsValidationError should be true for *ValidationError")
	}
	if IsValidationError(&FieldError{}) {
		t.Error("IsValidationError should be false for other errors")
	}
}
