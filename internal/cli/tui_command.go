package cli

import (
	"context"

	"todo-app/internal/tui"
)

// TUICommand opens the interactive task list
type TUICommand struct {
	app *App
}

// NewTUICommand creates a new tui command handler
func NewTUICommand(app *App) *TUICommand {
	return &TUICommand{app: app}
}

// Execute runs the terminal UI until the user quits
func (c *TUICommand) Execute(ctx context.Context, args []string) error {
	return tui.Run(ctx, c.app.session.Engine())
}
