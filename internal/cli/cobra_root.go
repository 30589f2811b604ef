package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"todo-app/internal/config"
	"todo-app/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	out    io.Writer
	errors *ErrorHandler
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	return NewRootCommandWithOutput(os.Stdout)
}

// NewRootCommandWithOutput creates the root command printing command output to out
func NewRootCommandWithOutput(out io.Writer) *RootCommand {
	root := &RootCommand{
		out:    out,
		errors: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A to-do list with an HTTP API, a CLI and a terminal UI",
		Long: `todo keeps a list of tasks in a SQLite database behind a small HTTP API.

The serve command runs the API. Every other command is a client of it.

EXAMPLES:
  todo serve                               # Start the API on :8080
  todo add "Buy milk" --due 2026-10-20     # Add a task due at the end of that day
  todo list --filter active                # List tasks that are not completed
  todo toggle 3                            # Mark task 3 completed, or active again
  todo edit 3 --title "Buy oat milk"       # Change only the title of task 3
  todo rm 3                                # Delete task 3
  todo tui                                 # Open the interactive list

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > TOML file > defaults

  TODO_CONFIG                              TOML configuration file
  TODO_DB_DIR                              Database directory (default: ~/.todo)
  TODO_DB_FILENAME                         Database filename (default: todo.db)
  TODO_SERVER_ADDR                         Listen address (default: :8080)
  TODO_SERVER_ALLOWED_ORIGINS              Comma separated CORS origins
  TODO_API_URL                             API base URL used by clients
  TODO_CLIENT_TIMEOUT                      HTTP client timeout (default: 15s)
  TODO_LOG_LEVEL                           debug, info, warn or error (default: info)
  TODO_LOG_FILE                            Also write JSON logs to this file
  TODO_ENV                                 development, testing or production
  TODO_APP_TIMEOUT                         Timeout of one client command (default: 60s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd.Flags())
		},
	}
	root.cmd.SetOut(out)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides the arguments read from os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration loaded for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "TOML configuration file (overrides TODO_CONFIG)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TODO_DB_WRITE_TIMEOUT)")

	// Server and client configuration
	flags.String("addr", "", "Listen address of the API (overrides TODO_SERVER_ADDR)")
	flags.String("api-url", "", "API base URL (overrides TODO_API_URL)")
	flags.Duration("client-timeout", 0, "HTTP client timeout (overrides TODO_CLIENT_TIMEOUT)")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides TODO_LOG_LEVEL)")
	flags.String("log-file", "", "JSON log file (overrides TODO_LOG_FILE)")

	// Application configuration
	flags.String("env", "", "Environment (overrides TODO_ENV)")
	flags.Duration("timeout", 0, "Timeout of one client command (overrides TODO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
}

// overridesFromFlags collects the flags the user actually set
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string, target **string) {
		if flags.Changed(name) {
			value, _ := flags.GetString(name)
			*target = &value
		}
	}
	durationFlag := func(name string, target **time.Duration) {
		if flags.Changed(name) {
			value, _ := flags.GetDuration(name)
			*target = &value
		}
	}

	stringFlag("config", &overrides.ConfigFile)
	stringFlag("db-dir", &overrides.DBDir)
	stringFlag("db-filename", &overrides.DBFilename)
	durationFlag("db-query-timeout", &overrides.DBQueryTimeout)
	durationFlag("db-write-timeout", &overrides.DBWriteTimeout)
	stringFlag("addr", &overrides.ServerAddr)
	stringFlag("api-url", &overrides.APIURL)
	durationFlag("client-timeout", &overrides.ClientTimeout)
	stringFlag("log-level", &overrides.LogLevel)
	stringFlag("log-file", &overrides.LogFile)
	stringFlag("env", &overrides.Environment)
	durationFlag("timeout", &overrides.Timeout)

	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}

func (r *RootCommand) loadConfig(flags *pflag.FlagSet) error {
	cfg, err := config.NewLoader().LoadWithOverrides(overridesFromFlags(flags))
	if err != nil {
		return err
	}
	r.config = cfg

	logging.Debugf("config: api=%s db=%s env=%s\n", cfg.Client.APIURL, cfg.GetDatabasePath(), cfg.Application.Environment)
	return nil
}

// runClient runs a client command under the application timeout
func (r *RootCommand) runClient(operation string, build func(app *App) Command, args []string) error {
	app, err := NewAppFromConfig(r.config, r.out)
	if err != nil {
		return r.errors.Handle(operation, err)
	}
	if r.config.Application.Verbose {
		fmt.Fprintf(r.cmd.ErrOrStderr(), "Using API %s\n", r.config.Client.APIURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()

	if err := build(app).Execute(ctx, args); err != nil {
		return r.errors.Handle(operation, err)
	}
	return nil
}

func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API backed by the SQLite database.

The server stops gracefully on SIGINT or SIGTERM, waiting up to the
configured shutdown timeout for in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := NewServeCommand(r.config, r.out).Execute(context.Background(), args); err != nil {
				return r.errors.Handle("serve", err)
			}
			return nil
		},
	}

	listOpts := ListOptions{}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in creation order followed by the number of tasks per filter.

Examples:
  todo list                      # All tasks
  todo list --filter completed   # Completed tasks only
  todo list --format csv > t.csv # Export as CSV`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runClient("list tasks", func(app *App) Command { return NewListCommand(app, listOpts) }, args)
		},
	}
	listCmd.Flags().StringVarP(&listOpts.Filter, "filter", "f", "all", "all, active or completed")
	listCmd.Flags().StringVar(&listOpts.Format, "format", FormatTable, "table or csv")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runClient("show task", func(app *App) Command { return NewShowCommand(app) }, args)
		},
	}

	addOpts := AddOptions{}
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Long: `Add a task. The arguments are joined into the title.

Due dates accept RFC 3339, "2006-01-02 15:04" or "2006-01-02" in local time.
A date without a time means the end of that day.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runClient("add task", func(app *App) Command { return NewAddCommand(app, addOpts) }, args)
		},
	}
	addCmd.Flags().StringVarP(&addOpts.Description, "description", "d", "", "Task description")
	addCmd.Flags().StringVar(&addOpts.Due, "due", "", "Due date")

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task completed or active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runClient("toggle task", func(app *App) Command { return NewToggleCommand(app) }, args)
		},
	}

	editOpts := EditOptions{}
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, description or due date of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			editOpts.TitleSet = flags.Changed("title")
			editOpts.DescriptionSet = flags.Changed("description")
			editOpts.DueSet = flags.Changed("due")
			return r.runClient("edit task", func(app *App) Command { return NewEditCommand(app, editOpts) }, args)
		},
	}
	editCmd.Flags().StringVar(&editOpts.Title, "title", "", "New title")
	editCmd.Flags().StringVarP(&editOpts.Description, "description", "d", "", "New description, empty to clear")
	editCmd.Flags().StringVar(&editOpts.Due, "due", "", "New due date")
	editCmd.Flags().BoolVar(&editOpts.ClearDue, "clear-due", false, "Remove the due date")

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runClient("delete task", func(app *App) Command { return NewRemoveCommand(app) }, args)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewAppFromConfig(r.config, r.out)
			if err != nil {
				return r.errors.Handle("start tui", err)
			}
			if err := NewTUICommand(app).Execute(context.Background(), args); err != nil {
				return r.errors.Handle("run tui", err)
			}
			return nil
		},
	}

	r.cmd.AddCommand(
		serveCmd,
		listCmd,
		showCmd,
		addCmd,
		toggleCmd,
		editCmd,
		rmCmd,
		tuiCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout.Duration > 0 {
		return r.config.Application.Timeout.Duration
	}
	return 60 * time.Second
}
