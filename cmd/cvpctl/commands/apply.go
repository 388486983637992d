package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/netauto/cvpctl/internal/app/actions"
	"github.com/netauto/cvpctl/internal/changecontrol"
	"github.com/netauto/cvpctl/internal/configlet"
	"github.com/netauto/cvpctl/internal/container"
	"github.com/netauto/cvpctl/internal/model"
	storageio "github.com/netauto/cvpctl/internal/storage/io"
	"github.com/netauto/cvpctl/internal/task"
)

// ApplyCommand runs an actions file. The configlet and container commands
// share it, each one handling its own action types.
type ApplyCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
	types   []model.ActionType

	actionsFile string
	maxAttempts int
	pause       time.Duration
	format      string
}

// NewConfigletApplyCommand returns the configlet apply command.
func NewConfigletApplyCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *ApplyCommand {
	return newApplyCommand(rootCmd, parent, "Run the configlet and change-control actions of an actions file.",
		model.ActionTypeConfiglet, model.ActionTypeChangeControl)
}

// NewContainerApplyCommand returns the container apply command.
func NewContainerApplyCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *ApplyCommand {
	return newApplyCommand(rootCmd, parent, "Run the container actions of an actions file.",
		model.ActionTypeContainer)
}

func newApplyCommand(rootCmd *RootCommand, parent *kingpin.CmdClause, help string, types ...model.ActionType) *ApplyCommand {
	c := &ApplyCommand{rootCmd: rootCmd, types: types}

	c.Cmd = parent.Command("apply", help)
	c.Cmd.Flag("json", "File with the list of actions to execute (JSON or YAML), CVP_JSON by default.").Short('j').StringVar(&c.actionsFile)
	c.Cmd.Flag("max-attempts", "Task status checks before giving up on a task.").Short('t').Default(fmt.Sprint(task.DefaultMaxAttempts)).IntVar(&c.maxAttempts)
	c.Cmd.Flag("action-pause", "Time to wait between actions, 0 disables it.").Default(actions.DefaultPause.String()).DurationVar(&c.pause)
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c ApplyCommand) Name() string { return c.Cmd.FullCommand() }

func (c ApplyCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger
	cfg := c.rootCmd.Config

	file := c.actionsFile
	if file == "" {
		file = cfg.ActionsFile
	}
	dir, name, err := splitPath(file)
	if err != nil {
		return err
	}

	acts, err := storageio.NewActionsRepository(os.DirFS(dir)).ListActions(ctx, name)
	if err != nil {
		return fmt.Errorf("could not load actions: %w", err)
	}
	logger.Infof("Loaded %d actions from %s", len(acts), file)

	client, err := c.rootCmd.newClient()
	if err != nil {
		return err
	}

	repo, closeRepo, err := c.rootCmd.newRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	runner, err := c.rootCmd.newTaskRunner(client, repo)
	if err != nil {
		return err
	}

	configlets, err := configlet.NewService(configlet.ServiceConfig{Client: client, TaskRunner: runner, Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create configlet service: %w", err)
	}

	containers, err := container.NewService(container.ServiceConfig{Client: client, TaskRunner: runner, Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create container service: %w", err)
	}

	changeControls, err := changecontrol.NewService(changecontrol.ServiceConfig{
		Client:   client,
		TimeZone: cfg.TimeZone,
		Country:  cfg.Country,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("could not create change control service: %w", err)
	}

	// Zero means the default pause for the service.
	pause := c.pause
	if pause == 0 {
		pause = -1
	}

	svc, err := actions.NewService(actions.ServiceConfig{
		Configlets:     configlets,
		Containers:     containers,
		ChangeControls: changeControls,
		TaskRunner:     runner,
		MaxAttempts:    c.maxAttempts,
		Pause:          pause,
		Sleep:          task.SleepContext,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	res, err := svc.Run(ctx, actions.Request{Actions: acts, Types: c.types})
	if res != nil {
		p := c.rootCmd.newPrinter(c.format)
		if perr := p.PrintTaskRuns(res.Runs); perr != nil {
			return fmt.Errorf("could not print task runs: %w", perr)
		}
		if perr := p.PrintChangeControls(res.ChangeControls); perr != nil {
			return fmt.Errorf("could not print change controls: %w", perr)
		}
		if perr := p.PrintMessage(fmt.Sprintf("%d of %d actions executed", res.Executed, len(acts))); perr != nil {
			return fmt.Errorf("could not print summary: %w", perr)
		}
	}
	if err != nil {
		return err
	}

	return checkRuns(res.Runs)
}
