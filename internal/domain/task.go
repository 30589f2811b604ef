package domain

import "time"

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Title       string
	Description *string
	IsCompleted bool
	CreatedAt   time.Time
	DueDate     *time.Time
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// HasDueDate reports whether the task carries a deadline.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}
