package domain

import (
	"time"

	"todo-app/internal/repository/sqlite"
)

// EntityToResponse copies every field of the entity into the response shape.
func EntityToResponse(task Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
	}
}

// EntitiesToResponses maps a slice of entities, preserving order. The result is never nil.
func EntitiesToResponses(tasks []Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = EntityToResponse(task)
	}
	return responses
}

// CreateRequestToEntity builds a new, not yet persisted task created at now.
func CreateRequestToEntity(req TaskCreateRequest, now time.Time) Task {
	return Task{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: false,
		CreatedAt:   now.UTC(),
		DueDate:     req.DueDate,
	}
}

// ApplyUpdateRequest overwrites the mutable fields of task in place. ID and CreatedAt are untouched.
func ApplyUpdateRequest(req TaskUpdateRequest, task *Task) {
	task.Title = req.Title
	task.Description = req.Description
	task.IsCompleted = req.IsCompleted
	task.DueDate = req.DueDate
}

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		Title:       domainTask.Title,
		Description: domainTask.Description,
		IsCompleted: domainTask.IsCompleted,
		CreatedAt:   domainTask.CreatedAt,
		DueDate:     domainTask.DueDate,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		IsCompleted: dbTask.IsCompleted,
		CreatedAt:   dbTask.CreatedAt,
		DueDate:     dbTask.DueDate,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}
