package services

import (
	"context"
	"time"

	"todo-app/internal/domain"
)

// Clock returns the current instant. Services read it once per operation.
type Clock func() time.Time

// TaskService handles the task lifecycle. Missing tasks are reported through the
// boolean/absent results, never as errors; validation failures are *errors.AppError
// values of type validation wrapping a *validation.ValidationError.
type TaskService interface {
	// ListTasks returns every task ordered by ascending id. The slice is never nil.
	ListTasks(ctx context.Context) ([]domain.TaskResponse, error)
	GetTask(ctx context.Context, id int64) (*domain.TaskResponse, bool, error)
	CreateTask(ctx context.Context, req domain.TaskCreateRequest) (*domain.TaskResponse, error)
	UpdateTask(ctx context.Context, id int64, req domain.TaskUpdateRequest) (bool, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
}
