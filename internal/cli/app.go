package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"todo-app/internal/client"
	"todo-app/internal/config"
	"todo-app/internal/errors"
	"todo-app/internal/reconcile"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	config   *config.Config
	session  *reconcile.Session
	out      io.Writer
	loc      *time.Location
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(session *reconcile.Session, cfg *config.Config, out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	app := &App{
		config:  cfg,
		session: session,
		out:     out,
		loc:     time.Local,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// NewAppFromConfig creates an application talking to the API configured in cfg
func NewAppFromConfig(cfg *config.Config, out io.Writer) (*App, error) {
	api, err := client.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	engine := reconcile.NewEngineWithClock(api, timeNow)
	return NewApp(reconcile.NewSession(engine), cfg, out), nil
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}

// parseTaskID parses a task id argument
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", arg, "must be a positive integer")
	}
	return id, nil
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
