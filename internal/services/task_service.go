package services

import (
	"context"
	"time"

	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/repository/sqlite"
	"todo-app/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
	now           Clock
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository) TaskService {
	return NewTaskServiceWithClock(repo, time.Now)
}

// NewTaskServiceWithClock creates a TaskService whose creation timestamps and
// due date checks use now
func NewTaskServiceWithClock(repo sqlite.Repository, now Clock) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidatorWithClock(now),
		now:           now,
	}
}

// ListTasks returns all tasks ordered by id
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.TaskResponse, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	return domain.EntitiesToResponses(t.mapper.FromDatabaseSlice(dbTasks)), nil
}

// GetTask retrieves a task by its ID; found is false when the id does not resolve
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.TaskResponse, bool, error) {
	task, found, err := t.load(ctx, id)
	if err != nil || !found {
		return nil, found, err
	}

	resp := domain.EntityToResponse(task)
	return &resp, true, nil
}

// CreateTask validates and persists a new task
func (t *taskServiceImpl) CreateTask(ctx context.Context, req domain.TaskCreateRequest) (*domain.TaskResponse, error) {
	if err := t.taskValidator.ValidateForCreate(req); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	task := domain.CreateRequestToEntity(req, t.now())

	dbTask := t.mapper.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}
	task.ID = dbTask.ID

	resp := domain.EntityToResponse(task)
	return &resp, nil
}

// UpdateTask overwrites the mutable fields of an existing task
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id int64, req domain.TaskUpdateRequest) (bool, error) {
	if err := t.taskValidator.ValidateForUpdate(req); err != nil {
		return false, errors.NewValidationError("invalid task", err)
	}

	task, found, err := t.load(ctx, id)
	if err != nil || !found {
		return false, err
	}

	domain.ApplyUpdateRequest(req, &task)

	dbTask := t.mapper.ToDatabase(task)
	if err := t.repo.UpdateTask(ctx, &dbTask); err != nil {
		// deleted between the read and the write
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// DeleteTask removes a task; false when the id does not resolve
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (bool, error) {
	if !t.validID(id) {
		return false, nil
	}

	if err := t.repo.DeleteTask(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (t *taskServiceImpl) validID(id int64) bool {
	return t.taskValidator.ValidateTaskID(id) == nil
}

// load fetches a task, translating a missing row into found=false
func (t *taskServiceImpl) load(ctx context.Context, id int64) (domain.Task, bool, error) {
	if !t.validID(id) {
		return domain.Task{}, false, nil
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.Task{}, false, nil
		}
		return domain.Task{}, false, err
	}

	return t.mapper.FromDatabase(*dbTask), true, nil
}
