package cli

import (
	"context"

	"todo-app/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry with default options for every command
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("list", NewListCommand(app, ListOptions{}))
	registry.Register("show", NewShowCommand(app))
	registry.Register("add", NewAddCommand(app, AddOptions{}))
	registry.Register("toggle", NewToggleCommand(app))
	registry.Register("edit", NewEditCommand(app, EditOptions{}))
	registry.Register("rm", NewRemoveCommand(app))
	registry.Register("tui", NewTUICommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return `usage: todo list [--filter all|active|completed] or todo show <id> or todo add "title" or todo toggle <id> or todo edit <id> or todo rm <id> or todo tui`
}
