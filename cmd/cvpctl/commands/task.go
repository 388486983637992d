package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/netauto/cvpctl/internal/app/taskrun"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/task"
)

// newTaskRunService wires the task run service, the returned function releases
// the history.
func newTaskRunService(ctx context.Context, rootCmd *RootCommand) (*taskrun.Service, func(), error) {
	client, err := rootCmd.newClient()
	if err != nil {
		return nil, nil, err
	}

	repo, closeRepo, err := rootCmd.newRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	runner, err := rootCmd.newTaskRunner(client, repo)
	if err != nil {
		closeRepo()
		return nil, nil, err
	}

	poller, err := task.NewPoller(task.PollerConfig{
		StatusGetter: client,
		Logger:       rootCmd.Logger,
	})
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("could not create poller: %w", err)
	}

	svc, err := taskrun.NewService(taskrun.ServiceConfig{
		Lister: client,
		Runner: runner,
		Waiter: poller,
		Logger: rootCmd.Logger,
	})
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("could not create service: %w", err)
	}

	return svc, closeRepo, nil
}

type TaskListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewTaskListCommand returns the task list command.
func NewTaskListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *TaskListCommand {
	c := &TaskListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List the pending tasks.")
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c TaskListCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskListCommand) Run(ctx context.Context) error {
	svc, done, err := newTaskRunService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer done()

	tasks, err := svc.List(ctx)
	if err != nil {
		return err
	}

	if err := c.rootCmd.newPrinter(c.format).PrintTasks(tasks); err != nil {
		return fmt.Errorf("could not print tasks: %w", err)
	}

	return nil
}

type TaskRunCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskID      string
	all         bool
	maxAttempts int
	format      string
}

// NewTaskRunCommand returns the task run command.
func NewTaskRunCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *TaskRunCommand {
	c := &TaskRunCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("run", "Execute a pending task, or all of them, and wait for completion.")
	c.Cmd.Arg("task-id", "ID of the task to execute.").StringVar(&c.taskID)
	c.Cmd.Flag("all", "Execute all the pending tasks.").BoolVar(&c.all)
	c.Cmd.Flag("max-attempts", "Status checks made before giving up on a task.").Short('t').Default(fmt.Sprint(task.DefaultMaxAttempts)).IntVar(&c.maxAttempts)
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c TaskRunCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskRunCommand) Run(ctx context.Context) error {
	svc, done, err := newTaskRunService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer done()

	runs, err := svc.Run(ctx, taskrun.RunRequest{
		TaskID:      c.taskID,
		All:         c.all,
		MaxAttempts: c.maxAttempts,
	})
	if len(runs) > 0 {
		if perr := c.rootCmd.newPrinter(c.format).PrintTaskRuns(runs); perr != nil {
			return fmt.Errorf("could not print task runs: %w", perr)
		}
	}
	if err != nil {
		return err
	}

	return checkRuns(runs)
}

type TaskWaitCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskID      string
	maxAttempts int
	format      string
}

// NewTaskWaitCommand returns the task wait command.
func NewTaskWaitCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *TaskWaitCommand {
	c := &TaskWaitCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("wait", "Wait for a task already executing, without executing it.")
	c.Cmd.Arg("task-id", "ID of the task to wait for.").Required().StringVar(&c.taskID)
	c.Cmd.Flag("max-attempts", "Status checks made before giving up.").Short('t').Default(fmt.Sprint(task.DefaultMaxAttempts)).IntVar(&c.maxAttempts)
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c TaskWaitCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskWaitCommand) Run(ctx context.Context) error {
	svc, done, err := newTaskRunService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer done()

	res, err := svc.Wait(ctx, c.taskID, c.maxAttempts)
	if err != nil {
		return err
	}

	run := model.TaskRun{
		TaskID:   res.TaskID,
		Status:   res.Status,
		State:    res.State,
		Attempts: res.Attempts,
	}
	if err := c.rootCmd.newPrinter(c.format).PrintTaskRuns([]model.TaskRun{run}); err != nil {
		return fmt.Errorf("could not print task run: %w", err)
	}

	return checkRuns([]model.TaskRun{run})
}
