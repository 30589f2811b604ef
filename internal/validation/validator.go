package validation

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Validator provides common validation utilities
type Validator struct {
	now func() time.Time
}

// NewValidator creates a new validator instance reading the wall clock
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorWithClock creates a validator that evaluates time rules against now()
func NewValidatorWithClock(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Now returns the validator's current instant
func (v *Validator) Now() time.Time {
	return v.now()
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Length returns the length of s in characters
func (v *Validator) Length(s string) int {
	return utf8.RuneCountInString(s)
}

// IsInThePast reports whether t is strictly earlier than the current instant
func (v *Validator) IsInThePast(t time.Time) bool {
	return t.Before(v.now())
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
