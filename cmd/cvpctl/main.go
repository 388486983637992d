package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"

	"github.com/netauto/cvpctl/cmd/cvpctl/commands"
	"github.com/netauto/cvpctl/internal/log"
	loglogrus "github.com/netauto/cvpctl/internal/log/logrus"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("cvpctl", "CloudVision Portal provisioning automation.")
	app.Version(Version)
	rootCmd := commands.NewRootCommand(app)

	configletCmd := app.Command("configlet", "Manage configlets.")
	configletApplyCmd := commands.NewConfigletApplyCommand(rootCmd, configletCmd)

	containerCmd := app.Command("container", "Manage containers.")
	containerApplyCmd := commands.NewContainerApplyCommand(rootCmd, containerCmd)

	ccCmd := app.Command("change-control", "Manage change controls.")
	ccCreateCmd := commands.NewChangeControlCreateCommand(rootCmd, ccCmd)

	taskCmd := app.Command("task", "Manage server tasks.")
	taskListCmd := commands.NewTaskListCommand(rootCmd, taskCmd)
	taskRunCmd := commands.NewTaskRunCommand(rootCmd, taskCmd)
	taskWaitCmd := commands.NewTaskWaitCommand(rootCmd, taskCmd)

	backupCmd := commands.NewBackupCommand(rootCmd, app)
	historyCmd := commands.NewHistoryCommand(rootCmd, app)

	cmds := map[string]commands.Command{
		configletApplyCmd.Name(): configletApplyCmd,
		containerApplyCmd.Name(): containerApplyCmd,
		ccCreateCmd.Name():       ccCreateCmd,
		taskListCmd.Name():       taskListCmd,
		taskRunCmd.Name():        taskRunCmd,
		taskWaitCmd.Name():       taskWaitCmd,
		backupCmd.Name():         backupCmd,
		historyCmd.Name():        historyCmd,
	}

	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	if err := rootCmd.LoadConfig(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Listing commands print tables, keep the logs out of them unless debugging.
	printerCommands := map[string]bool{
		"task list": true,
		"history":   true,
	}
	if printerCommands[cmdName] && !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	rootCmd.Logger, err = getLogger(*rootCmd)
	if err != nil {
		return fmt.Errorf("could not create logger: %w", err)
	}

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// getLogger returns the application logger, --debug wins over the configured
// level.
func getLogger(config commands.RootCommand) (log.Logger, error) {
	if config.NoLog {
		return log.Noop, nil
	}

	level := log.LevelDebug
	if !config.Debug {
		var err error
		level, err = log.ParseLevel(config.Config.LogLevel)
		if err != nil {
			return nil, err
		}
	}

	format := loglogrus.FormatText
	if config.LoggerType == commands.LoggerTypeJSON {
		format = loglogrus.FormatJSON
	}

	logger, err := loglogrus.New(loglogrus.Config{
		Out:     config.Stderr,
		Level:   level,
		Format:  format,
		NoColor: config.NoColor,
	})
	if err != nil {
		return nil, err
	}
	logger = logger.WithValues(log.Kv{"version": Version})
	logger.Debugf("Debug level is enabled")

	return logger, nil
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
