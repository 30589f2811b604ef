package sqlite

import "time"

// Task is a row of the tasks table
type Task struct {
	ID          int64
	Title       string
	Description *string // NULL when absent; distinct from ""
	IsCompleted bool
	CreatedAt   time.Time
	DueDate     *time.Time
}
