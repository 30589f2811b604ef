package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"todo-app/internal/api"
	"todo-app/internal/config"
	"todo-app/internal/logging"
	"todo-app/internal/repository/sqlite"
	"todo-app/internal/services"
)

// ServeCommand runs the HTTP API until an interrupt or terminate signal arrives
type ServeCommand struct {
	config *config.Config
	out    io.Writer
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(cfg *config.Config, out io.Writer) *ServeCommand {
	return &ServeCommand{config: cfg, out: out}
}

// runningServer holds everything that has to be released on shutdown
type runningServer struct {
	server *api.Server
	repo   sqlite.Repository
	logger *slog.Logger
	closer io.Closer
}

// start opens the store and begins listening on the configured address
func (c *ServeCommand) start() (*runningServer, error) {
	logger, closer, err := logging.New(logging.Options{
		Level: c.config.Logging.Level,
		File:  c.config.Logging.File,
	})
	if err != nil {
		return nil, err
	}

	repo, err := config.CreateRepository(c.config)
	if err != nil {
		closer.Close()
		return nil, err
	}

	server := api.NewServer(services.NewTaskService(repo), logger, c.config)
	if err := server.Start(); err != nil {
		repo.Close()
		closer.Close()
		return nil, err
	}

	logger.Info("server started",
		"addr", server.Addr(),
		"database", c.config.GetDatabasePath(),
		"environment", c.config.Application.Environment)

	return &runningServer{server: server, repo: repo, logger: logger, closer: closer}, nil
}

// shutdownOperations stops the listener before the store it reads from
func (r *runningServer) shutdownOperations() map[string]gfshutdown.Operation {
	return map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			r.logger.Info("graceful shutdown initiated")
			if err := r.server.Shutdown(ctx); err != nil {
				return err
			}
			if err := r.repo.Close(); err != nil {
				return fmt.Errorf("failed to close database: %w", err)
			}
			r.logger.Info("server stopped")
			return r.closer.Close()
		},
	}
}

// Execute blocks until the server has shut down
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	running, err := c.start()
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Listening on http://%s%s\n", running.server.Addr(), api.APIPrefix)
	fmt.Fprintln(c.out, "Press Ctrl+C to shutdown gracefully")

	wait := gfshutdown.GracefulShutdown(ctx, c.config.Server.ShutdownTimeout.Duration, running.shutdownOperations())
	if exitCode := <-wait; exitCode != 0 {
		return fmt.Errorf("server exited with code %d", exitCode)
	}
	return nil
}
