package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "todo.db", cfg.Database.Filename)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, DefaultAPIURL, cfg.Client.APIURL)
	assert.Equal(t, []string{"http://localhost:5173", "https://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, EnvProduction, cfg.Application.Environment)
	assert.False(t, cfg.IsDevelopment())
	require.NoError(t, cfg.Validate())
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/var/lib/todo"
	assert.Equal(t, filepath.Join("/var/lib/todo", "todo.db"), cfg.GetDatabasePath())

	cfg.Application.Environment = EnvTesting
	assert.Equal(t, ":memory:", cfg.GetDatabasePath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TODO_DB_DIR", "/tmp/todo-data")
	t.Setenv("TODO_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("TODO_DB_DIR_PERMISSIONS", "700")
	t.Setenv("TODO_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("TODO_SERVER_ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("TODO_API_URL", "http://api.example:8080")
	t.Setenv("TODO_ENV", "Development")
	t.Setenv("TODO_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/todo-data", cfg.Database.Dir)
	assert.Equal(t, 3*time.Second, cfg.GetQueryTimeout())
	assert.Equal(t, uint32(0700), cfg.Database.DirPermissions)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://api.example:8080", cfg.Client.APIURL)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("TODO_DB_WRITE_TIMEOUT", "soon")
	t.Setenv("TODO_APP_VERBOSE", "maybe")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 5*time.Second, cfg.GetWriteTimeout())
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty db dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout.Duration = 0 }, "database.query_timeout"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"empty api url", func(c *Config) { c.Client.APIURL = "" }, "client.api_url"},
		{"bad log level", func(c *Config) { c.Logging.Level = "chatty" }, "logging.level"},
		{"bad environment", func(c *Config) { c.Application.Environment = "staging" }, "application.environment"},
		{"negative timeout", func(c *Config) { c.Application.Timeout.Duration = -time.Second }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfig_Validate_TestingIgnoresDatabaseLocation(t *testing.T) {
	cfg := NewConfig()
	cfg.Application.Environment = EnvTesting
	cfg.Database.Dir = ""
	cfg.Database.Filename = ""

	assert.NoError(t, cfg.Validate())
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("250ms")))
	assert.Equal(t, 250*time.Millisecond, d.Duration)

	assert.Error(t, d.UnmarshalText([]byte("a while")))
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
