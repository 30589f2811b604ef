// Package reconcile turns user intents into state actions and API requests.
//
// Every intent becomes an Op. Start is reduced immediately; Run performs the
// request and returns the action that settles it. Server responses are spliced
// into local state: creates are inserted once confirmed, updates are applied
// speculatively and reconciled to the server's values, deletes are removed once
// acknowledged.
package reconcile

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"
	"time"

	"todo-app/internal/client"
	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/state"
	"todo-app/internal/validation"
)

// Draft is the user's input for a new or edited task.
type Draft struct {
	Title       string
	Description *string
	DueDate     *time.Time
}

// DraftOf returns a draft pre-filled with the task's current values.
func DraftOf(task state.TaskView) Draft {
	return Draft{Title: task.Text, Description: task.Description, DueDate: task.DueDate}
}

// normalize trims the title and description; a blank description becomes absent.
func (d Draft) normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	if d.Description != nil {
		desc := strings.TrimSpace(*d.Description)
		if desc == "" {
			d.Description = nil
		} else {
			d.Description = &desc
		}
	}
	return d
}

// Op is one unit of work. Run is nil when nothing needs to be sent.
type Op struct {
	Start state.Action
	Run   func(ctx context.Context) state.Action
}

// Engine builds ops against a TodoAPI.
type Engine struct {
	api       client.TodoAPI
	validator *validation.TaskValidator
}

// NewEngine creates an engine that validates drafts against the wall clock.
func NewEngine(api client.TodoAPI) *Engine {
	return NewEngineWithClock(api, time.Now)
}

// NewEngineWithClock creates an engine whose validation rules read now.
func NewEngineWithClock(api client.TodoAPI, now func() time.Time) *Engine {
	return &Engine{
		api:       api,
		validator: validation.NewTaskValidatorWithClock(now),
	}
}

// Load reloads the full task list.
func (e *Engine) Load() Op {
	return Op{
		Start: state.LoadStarted{},
		Run: func(ctx context.Context) state.Action {
			tasks, err := e.api.List(ctx)
			if err != nil {
				return state.LoadFailed{Err: errors.GetUserMessage(err), Cause: err}
			}
			return state.LoadSucceeded{Tasks: state.FromResponses(tasks)}
		},
	}
}

// Add creates a task from draft. An invalid draft is rejected without a request.
func (e *Engine) Add(draft Draft) Op {
	d := draft.normalize()
	req := domain.TaskCreateRequest{Title: d.Title, Description: d.Description, DueDate: d.DueDate}

	if fields := fieldErrors(e.validator.ValidateForCreate(req)); fields != nil {
		return Op{Start: state.CreateRejected{FieldErrors: fields}}
	}

	return Op{
		Start: state.CreateStarted{},
		Run: func(ctx context.Context) state.Action {
			created, err := e.api.Create(ctx, req)
			if err != nil {
				if fields := fieldErrors(err); fields != nil {
					return state.CreateRejected{FieldErrors: fields}
				}
				return state.CreateFailed{Err: errors.GetUserMessage(err), Cause: err}
			}
			return state.CreateSucceeded{Task: state.FromResponse(*created)}
		},
	}
}

// Toggle flips the completion of task id.
func (e *Engine) Toggle(s state.State, id int64) (Op, error) {
	task, ok := s.Find(id)
	if !ok {
		return Op{}, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}

	task.Completed = !task.Completed
	return e.update(task), nil
}

// Edit replaces the title, description and due date of task id with draft.
func (e *Engine) Edit(s state.State, id int64, draft Draft) (Op, error) {
	task, ok := s.Find(id)
	if !ok {
		return Op{}, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}

	d := draft.normalize()
	task.Text = d.Title
	task.Description = d.Description
	task.DueDate = d.DueDate

	if fields := fieldErrors(e.validator.ValidateForUpdate(task.ToUpdateRequest())); fields != nil {
		return Op{Start: state.UpdateFailed{ID: id, FieldErrors: fields}}, nil
	}
	return e.update(task), nil
}

// Remove deletes task id once the server acknowledges.
func (e *Engine) Remove(s state.State, id int64) (Op, error) {
	if _, ok := s.Find(id); !ok {
		return Op{}, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}

	return Op{
		Start: state.DeleteStarted{ID: id},
		Run: func(ctx context.Context) state.Action {
			if err := e.api.Delete(ctx, id); err != nil {
				if errors.IsNotFound(err) {
					return state.TaskVanished{ID: id}
				}
				return state.DeleteFailed{ID: id, Err: errors.GetUserMessage(err), Cause: err}
			}
			return state.DeleteSucceeded{ID: id}
		},
	}, nil
}

// update sends the speculative task and re-reads it so the server's values win.
func (e *Engine) update(speculative state.TaskView) Op {
	id := speculative.ID
	return Op{
		Start: state.UpdateStarted{Task: speculative},
		Run: func(ctx context.Context) state.Action {
			if err := e.api.Update(ctx, id, speculative.ToUpdateRequest()); err != nil {
				return updateFailure(id, err)
			}

			confirmed, err := e.api.Get(ctx, id)
			if err != nil {
				if errors.IsNotFound(err) {
					return state.TaskVanished{ID: id}
				}
				// the write was accepted, so the values sent are what the server holds
				return state.UpdateConfirmed{Task: speculative}
			}
			return state.UpdateConfirmed{Task: state.FromResponse(*confirmed)}
		},
	}
}

func updateFailure(id int64, err error) state.Action {
	if errors.IsNotFound(err) {
		return state.TaskVanished{ID: id}
	}
	if fields := fieldErrors(err); fields != nil {
		return state.UpdateFailed{ID: id, FieldErrors: fields, Cause: err}
	}
	return state.UpdateFailed{ID: id, Err: errors.GetUserMessage(err), Cause: err}
}

// fieldErrors extracts the field messages of a validation failure, or nil.
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var ve *validation.ValidationError
	if !stderrors.As(err, &ve) || !ve.HasErrors() {
		return nil
	}
	return ve.Fields()
}

// ErrorOf returns the error a settling action reports, or nil when it succeeded.
func ErrorOf(action state.Action) error {
	switch a := action.(type) {
	case state.CreateRejected:
		return errors.NewValidationError("invalid task", validation.FromFields(a.FieldErrors))
	case state.UpdateFailed:
		if a.Cause != nil {
			return a.Cause
		}
		if len(a.FieldErrors) > 0 {
			return errors.NewValidationError("invalid task", validation.FromFields(a.FieldErrors))
		}
		return errors.NewUnexpectedError(a.Err, nil)
	case state.LoadFailed:
		return causeOr(a.Cause, a.Err)
	case state.CreateFailed:
		return causeOr(a.Cause, a.Err)
	case state.DeleteFailed:
		return causeOr(a.Cause, a.Err)
	case state.TaskVanished:
		return errors.NewNotFoundError("task", strconv.FormatInt(a.ID, 10))
	default:
		return nil
	}
}

func causeOr(cause error, message string) error {
	if cause != nil {
		return cause
	}
	return errors.NewUnexpectedError(message, nil)
}
