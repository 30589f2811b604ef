package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Environment names recognised by Application.Environment
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// DefaultAPIURL is used by the client when TODO_API_URL is not set
const DefaultAPIURL = "http://localhost:8080"

// Config holds all configuration options for the todo application
type Config struct {
	Database    DatabaseConfig    `toml:"database"`
	Server      ServerConfig      `toml:"server"`
	Client      ClientConfig      `toml:"client"`
	Logging     LoggingConfig     `toml:"logging"`
	Application ApplicationConfig `toml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string   `toml:"dir" env:"TODO_DB_DIR"`
	Filename       string   `toml:"filename" env:"TODO_DB_FILENAME"`
	QueryTimeout   Duration `toml:"query_timeout" env:"TODO_DB_QUERY_TIMEOUT"`
	WriteTimeout   Duration `toml:"write_timeout" env:"TODO_DB_WRITE_TIMEOUT"`
	DirPermissions uint32   `toml:"dir_permissions" env:"TODO_DB_DIR_PERMISSIONS"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr              string   `toml:"addr" env:"TODO_SERVER_ADDR"`
	ShutdownTimeout   Duration `toml:"shutdown_timeout" env:"TODO_SERVER_SHUTDOWN_TIMEOUT"`
	ReadHeaderTimeout Duration `toml:"read_header_timeout" env:"TODO_SERVER_READ_HEADER_TIMEOUT"`
	AllowedOrigins    []string `toml:"allowed_origins" env:"TODO_SERVER_ALLOWED_ORIGINS"`
}

// ClientConfig holds configuration for the API client used by the CLI and TUI
type ClientConfig struct {
	APIURL  string   `toml:"api_url" env:"TODO_API_URL"`
	Timeout Duration `toml:"timeout" env:"TODO_CLIENT_TIMEOUT"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level string `toml:"level" env:"TODO_LOG_LEVEL"`
	File  string `toml:"file" env:"TODO_LOG_FILE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Environment string   `toml:"environment" env:"TODO_ENV"`
	Timeout     Duration `toml:"timeout" env:"TODO_APP_TIMEOUT"`
	Verbose     bool     `toml:"verbose" env:"TODO_APP_VERBOSE"`
}

// Duration is a time.Duration that decodes from TOML strings such as "5s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "todo.db",
			QueryTimeout:   Duration{10 * time.Second},
			WriteTimeout:   Duration{5 * time.Second},
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:              ":8080",
			ShutdownTimeout:   Duration{10 * time.Second},
			ReadHeaderTimeout: Duration{10 * time.Second},
			AllowedOrigins:    []string{"http://localhost:5173", "https://localhost:5173"},
		},
		Client: ClientConfig{
			APIURL:  DefaultAPIURL,
			Timeout: Duration{15 * time.Second},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Application: ApplicationConfig{
			Environment: EnvProduction,
			Timeout:     Duration{60 * time.Second},
			Verbose:     false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.IsTesting() {
		return ":memory:"
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout.Duration
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout.Duration
}

// IsDevelopment reports whether internal error details may be exposed to callers
func (c *Config) IsDevelopment() bool {
	return c.Application.Environment == EnvDevelopment
}

// IsTesting reports whether the application runs against a throwaway in-memory store
func (c *Config) IsTesting() bool {
	return c.Application.Environment == EnvTesting
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TODO_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout.Duration = ParseDurationWithFallback(timeout, c.Database.QueryTimeout.Duration)
	}
	if timeout := os.Getenv("TODO_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout.Duration = ParseDurationWithFallback(timeout, c.Database.WriteTimeout.Duration)
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Server configuration
	if addr := os.Getenv("TODO_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TODO_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Server.ShutdownTimeout.Duration = ParseDurationWithFallback(timeout, c.Server.ShutdownTimeout.Duration)
	}
	if timeout := os.Getenv("TODO_SERVER_READ_HEADER_TIMEOUT"); timeout != "" {
		c.Server.ReadHeaderTimeout.Duration = ParseDurationWithFallback(timeout, c.Server.ReadHeaderTimeout.Duration)
	}
	if origins := os.Getenv("TODO_SERVER_ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}

	// Client configuration
	if url := os.Getenv("TODO_API_URL"); url != "" {
		c.Client.APIURL = url
	}
	if timeout := os.Getenv("TODO_CLIENT_TIMEOUT"); timeout != "" {
		c.Client.Timeout.Duration = ParseDurationWithFallback(timeout, c.Client.Timeout.Duration)
	}

	// Logging configuration
	if level := os.Getenv("TODO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("TODO_LOG_FILE"); file != "" {
		c.Logging.File = file
	}

	// Application configuration
	if env := os.Getenv("TODO_ENV"); env != "" {
		c.Application.Environment = strings.ToLower(env)
	}
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout.Duration = ParseDurationWithFallback(timeout, c.Application.Timeout.Duration)
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if !c.IsTesting() {
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	}
	if c.Database.QueryTimeout.Duration <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout.Duration <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if c.Server.ReadHeaderTimeout.Duration <= 0 {
		return &ConfigError{Field: "server.read_header_timeout", Message: "read header timeout must be positive"}
	}

	// Validate client configuration
	if c.Client.APIURL == "" {
		return &ConfigError{Field: "client.api_url", Message: "API URL cannot be empty"}
	}
	if c.Client.Timeout.Duration <= 0 {
		return &ConfigError{Field: "client.timeout", Message: "client timeout must be positive"}
	}

	// Validate logging configuration
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "log level must be one of debug, info, warn, error"}
	}

	// Validate application configuration
	switch c.Application.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return &ConfigError{Field: "application.environment", Message: "environment must be one of development, testing, production"}
	}
	if c.Application.Timeout.Duration <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
