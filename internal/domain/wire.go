package domain

import "time"

// TaskCreateRequest is the body of POST /api/v1/todo.
type TaskCreateRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskUpdateRequest is the body of PUT /api/v1/todo/{id}. Every mutable field is sent.
type TaskUpdateRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskResponse is the representation of a task returned by the API.
// Absent optional fields serialize as null.
type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate"`
}
