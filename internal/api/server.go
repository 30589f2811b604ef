// Package api exposes the task service over HTTP.
package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"todo-app/internal/config"
	"todo-app/internal/services"

	"github.com/gin-gonic/gin"
)

// APIPrefix is the versioned path prefix of every task route
const APIPrefix = "/api/v1"

// Server is the HTTP surface of the task service.
type Server struct {
	cfg     *config.Config
	service services.TaskService
	logger  *slog.Logger
	engine  *gin.Engine

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewServer builds the gin engine and registers all routes.
func NewServer(service services.TaskService, logger *slog.Logger, cfg *config.Config) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		service: service,
		logger:  logger,
		engine:  gin.New(),
	}

	s.engine.Use(s.requestIDMiddleware())
	s.engine.Use(gin.CustomRecoveryWithWriter(io.Discard, s.recoveryHandler))
	s.engine.Use(s.loggingMiddleware())
	s.engine.Use(s.corsMiddleware())

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.health)

	v1 := s.engine.Group(APIPrefix)
	{
		todo := v1.Group("/todo")
		{
			todo.GET("", s.listTasks)
			todo.POST("", s.createTask)
			todo.GET("/:id", s.getTask)
			todo.PUT("/:id", s.updateTask)
			todo.DELETE("/:id", s.deleteTask)
		}
	}
}

// Handler returns the request handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on the configured address and serves in the background.
// Bind errors are returned synchronously.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listener, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}

	s.listener = listener
	s.server = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout.Duration,
	}

	go func(srv *http.Server) {
		s.logger.Info("HTTP server starting", "addr", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", "error", err)
		}
	}(s.server)

	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	s.logger.Info("Shutting down HTTP server")
	return srv.Shutdown(ctx)
}
