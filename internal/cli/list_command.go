package cli

import (
	"context"
	"fmt"

	"todo-app/internal/errors"
	"todo-app/internal/state"
)

// List output formats
const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

// ListOptions holds the flags of the list command
type ListOptions struct {
	Filter string
	Format string
}

// ListCommand handles the list command
type ListCommand struct {
	app  *App
	opts ListOptions
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, opts ListOptions) *ListCommand {
	return &ListCommand{app: app, opts: opts}
}

// Execute loads every task and prints the ones matching the filter, followed by the counts
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	filter, err := state.ParseFilter(c.opts.Filter)
	if err != nil {
		return errors.NewInvalidInputError("filter", c.opts.Filter, err.Error())
	}

	s, err := c.app.session.Load(ctx)
	if err != nil {
		return err
	}
	s = c.app.session.Apply(state.FilterChanged{Filter: filter})
	visible := state.Visible(s.Tasks, s.Filter)

	switch c.opts.Format {
	case "", FormatTable:
	case FormatCSV:
		return writeCSV(c.app.out, visible)
	default:
		return errors.NewInvalidInputError("format", c.opts.Format, "unsupported format")
	}

	if len(visible) == 0 {
		title, description := state.EmptyMessage(filter)
		c.app.printf("%s. %s\n", title, description)
	} else if err := writeTable(c.app.out, visible, timeNow(), c.app.loc); err != nil {
		return err
	}

	counts := state.CountsOf(s.Tasks)
	c.app.printf("\nall: %d  active: %d  completed: %d\n", counts.All, counts.Active, counts.Completed)
	return nil
}

// ShowCommand handles the show command
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute prints every field of one task
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("args", fmt.Sprint(args), "usage: todo show <id>")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	s, err := c.app.session.Load(ctx)
	if err != nil {
		return err
	}

	task, ok := s.Find(id)
	if !ok {
		return errors.NewNotFoundError("task", args[0])
	}
	return writeDetails(c.app.out, task, timeNow(), c.app.loc)
}
