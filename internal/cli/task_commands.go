package cli

import (
	"context"
	"fmt"
	"strings"

	"todo-app/internal/errors"
	"todo-app/internal/reconcile"
)

// AddOptions holds the flags of the add command
type AddOptions struct {
	Description string
	Due         string
}

// AddCommand handles the add command
type AddCommand struct {
	app  *App
	opts AddOptions
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, opts AddOptions) *AddCommand {
	return &AddCommand{app: app, opts: opts}
}

// Execute creates a task titled with the joined arguments
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	due, err := reconcile.ParseDueDate(c.opts.Due, c.app.loc)
	if err != nil {
		return errors.NewInvalidInputError("due", c.opts.Due, err.Error())
	}

	draft := reconcile.Draft{Title: strings.Join(args, " "), DueDate: due}
	if c.opts.Description != "" {
		description := c.opts.Description
		draft.Description = &description
	}

	s, err := c.app.session.Add(ctx, draft)
	if err != nil {
		return err
	}

	created := s.Tasks[len(s.Tasks)-1]
	c.app.printf("Added task #%d: %s\n", created.ID, created.Text)
	return nil
}

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app *App
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app}
}

// Execute flips the completion of one task
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	id, err := singleID(args, "toggle")
	if err != nil {
		return err
	}

	if _, err := c.app.session.Load(ctx); err != nil {
		return err
	}
	s, err := c.app.session.Toggle(ctx, id)
	if err != nil {
		return err
	}

	task, _ := s.Find(id)
	status := "active"
	if task.Completed {
		status = "completed"
	}
	c.app.printf("Task #%d marked %s\n", id, status)
	return nil
}

// EditOptions holds the flags of the edit command. Only fields marked as set are changed.
type EditOptions struct {
	Title          string
	TitleSet       bool
	Description    string
	DescriptionSet bool
	Due            string
	DueSet         bool
	ClearDue       bool
}

// EditCommand handles the edit command
type EditCommand struct {
	app  *App
	opts EditOptions
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App, opts EditOptions) *EditCommand {
	return &EditCommand{app: app, opts: opts}
}

// Execute changes the given fields of one task and keeps the rest
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	id, err := singleID(args, "edit")
	if err != nil {
		return err
	}
	if c.opts.DueSet && c.opts.ClearDue {
		return errors.NewInvalidInputError("due", c.opts.Due, "cannot be combined with --clear-due")
	}

	s, err := c.app.session.Load(ctx)
	if err != nil {
		return err
	}
	task, ok := s.Find(id)
	if !ok {
		return errors.NewNotFoundError("task", args[0])
	}

	draft := reconcile.DraftOf(task)
	if c.opts.TitleSet {
		draft.Title = c.opts.Title
	}
	if c.opts.DescriptionSet {
		description := c.opts.Description
		draft.Description = &description
	}
	if c.opts.DueSet {
		due, err := reconcile.ParseDueDate(c.opts.Due, c.app.loc)
		if err != nil {
			return errors.NewInvalidInputError("due", c.opts.Due, err.Error())
		}
		draft.DueDate = due
	}
	if c.opts.ClearDue {
		draft.DueDate = nil
	}

	s, err = c.app.session.Edit(ctx, id, draft)
	if err != nil {
		return err
	}

	task, _ = s.Find(id)
	c.app.printf("Updated task #%d: %s\n", id, task.Text)
	return nil
}

// RemoveCommand handles the rm command
type RemoveCommand struct {
	app *App
}

// NewRemoveCommand creates a new rm command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app}
}

// Execute deletes one task
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	id, err := singleID(args, "rm")
	if err != nil {
		return err
	}

	if _, err := c.app.session.Load(ctx); err != nil {
		return err
	}
	if _, err := c.app.session.Remove(ctx, id); err != nil {
		return err
	}

	c.app.printf("Deleted task #%d\n", id)
	return nil
}

func singleID(args []string, command string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.NewInvalidInputError("args", fmt.Sprint(args), fmt.Sprintf("usage: todo %s <id>", command))
	}
	return parseTaskID(args[0])
}
