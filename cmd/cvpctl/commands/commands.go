package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/netauto/cvpctl/internal/config"
	"github.com/netauto/cvpctl/internal/conventions"
	"github.com/netauto/cvpctl/internal/cvp/rest"
	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/printer"
	"github.com/netauto/cvpctl/internal/storage"
	"github.com/netauto/cvpctl/internal/storage/memory"
	"github.com/netauto/cvpctl/internal/storage/sqlite"
	"github.com/netauto/cvpctl/internal/task"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"

	formatTable = "table"
	formatJSON  = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	DBPath     string
	NoHistory  bool

	// Configuration sources.
	ConfigFile        string
	EnvFile           string
	host              string
	port              int
	protocol          string
	username          string
	password          string
	certValidation    bool
	certValidationSet bool

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
	Config config.Config
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	app.Flag("config", "Configuration file (YAML, JSON or TOML).").StringVar(&c.ConfigFile)
	app.Flag("env-file", "Environment file loaded before reading the environment, .env by default.").StringVar(&c.EnvFile)
	app.Flag("cvp", "Address of the CVP server.").Short('s').StringVar(&c.host)
	app.Flag("port", "Port of the CVP server.").IntVar(&c.port)
	app.Flag("proto", "Protocol used to reach the CVP server (http, https).").StringVar(&c.protocol)
	app.Flag("username", "Username for CVP.").Short('u').StringVar(&c.username)
	app.Flag("password", "Password for CVP.").Short('p').StringVar(&c.password)
	app.Flag("cert-validation", "Validate the CVP server TLS certificate.").IsSetByUser(&c.certValidationSet).BoolVar(&c.certValidation)

	app.Flag("db-path", "Path to the task run history SQLite database.").Envar("CVPCTL_DB_PATH").Default(conventions.HistoryDBPath()).StringVar(&c.DBPath)
	app.Flag("no-history", "Don't record task runs in the local history.").BoolVar(&c.NoHistory)

	return c
}

// LoadConfig resolves the configuration, the command line flags have the
// highest precedence.
func (c *RootCommand) LoadConfig() error {
	overrides := map[string]any{}
	if c.host != "" {
		overrides["host"] = c.host
	}
	if c.port != 0 {
		overrides["port"] = c.port
	}
	if c.protocol != "" {
		overrides["proto"] = c.protocol
	}
	if c.username != "" {
		overrides["user"] = c.username
	}
	if c.password != "" {
		overrides["pass"] = c.password
	}
	if c.certValidationSet {
		overrides["cert_validation"] = c.certValidation
	}

	configFile := c.ConfigFile
	if configFile == "" {
		if _, err := os.Stat(conventions.ConfigPath()); err == nil {
			configFile = conventions.ConfigPath()
		}
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		EnvFile:    c.EnvFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	c.Config = *cfg

	return nil
}

func (c *RootCommand) newClient() (*rest.Client, error) {
	client, err := rest.NewClient(rest.ClientConfig{
		Host:           c.Config.Host,
		Port:           c.Config.Port,
		Protocol:       c.Config.Protocol,
		Username:       c.Config.Username,
		Password:       c.Config.Password,
		CertValidation: c.Config.CertValidation,
		Logger:         c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create CVP client: %w", err)
	}

	c.Logger.Debugf("CVP client for %s://%s:%d as %s", c.Config.Protocol, c.Config.Host, c.Config.Port, c.Config.Username)

	return client, nil
}

// newRepository returns the task run history and a function to release it.
func (c *RootCommand) newRepository(ctx context.Context) (storage.TaskRunRepository, func(), error) {
	if c.NoHistory {
		repo, err := memory.NewRepository(memory.RepositoryConfig{Logger: c.Logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create repository: %w", err)
		}
		return repo, func() {}, nil
	}

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.DBPath,
		Logger: c.Logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create repository: %w", err)
	}

	return repo, func() {
		if err := repo.Close(); err != nil {
			c.Logger.Warningf("could not close history database: %s", err)
		}
	}, nil
}

func (c *RootCommand) newTaskRunner(client task.Client, repo storage.TaskRunRepository) (*task.Runner, error) {
	runner, err := task.NewRunner(task.RunnerConfig{
		Client:     client,
		Repository: repo,
		Logger:     c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create task runner: %w", err)
	}

	return runner, nil
}

func (c *RootCommand) newPrinter(format string) printer.Printer {
	if format == formatJSON {
		return printer.NewJSONPrinter(c.Stdout)
	}
	return printer.NewTablePrinter(c.Stdout)
}

// checkRuns returns model.ErrTaskTimeout when any task didn't complete.
func checkRuns(runs []model.TaskRun) error {
	n, failed := 0, 0
	for _, r := range runs {
		if r.Completed() {
			continue
		}
		n++
		if r.Status.IsFailed() {
			failed++
		}
	}
	switch {
	case failed > 0:
		return fmt.Errorf("%d of %d tasks not completed (%d failed on server): %w", n, len(runs), failed, model.ErrTaskTimeout)
	case n > 0:
		return fmt.Errorf("%d of %d tasks not completed: %w", n, len(runs), model.ErrTaskTimeout)
	}

	return nil
}

// splitPath returns the directory and file name of a path, used to load files
// through an fs.FS rooted at their directory.
func splitPath(path string) (dir, name string, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	if abs == filepath.Dir(abs) {
		return "", "", errors.New("path must be a file")
	}

	return filepath.Dir(abs), filepath.Base(abs), nil
}
