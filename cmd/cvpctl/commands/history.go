package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/netauto/cvpctl/internal/app/history"
)

type HistoryCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskID string
	limit  int
	format string
}

// NewHistoryCommand returns the history command.
func NewHistoryCommand(rootCmd *RootCommand, app *kingpin.Application) *HistoryCommand {
	c := &HistoryCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("history", "List the task runs recorded locally.")
	c.Cmd.Flag("task-id", "Only list the runs of this task.").StringVar(&c.taskID)
	c.Cmd.Flag("limit", "Maximum number of runs listed, negative lists all.").Default(fmt.Sprint(history.DefaultLimit)).IntVar(&c.limit)
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c HistoryCommand) Name() string { return c.Cmd.FullCommand() }

func (c HistoryCommand) Run(ctx context.Context) error {
	repo, done, err := c.rootCmd.newRepository(ctx)
	if err != nil {
		return err
	}
	defer done()

	svc, err := history.NewService(history.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	runs, err := svc.Run(ctx, history.Request{TaskID: c.taskID, Limit: c.limit})
	if err != nil {
		return err
	}

	if err := c.rootCmd.newPrinter(c.format).PrintTaskRuns(runs); err != nil {
		return fmt.Errorf("could not print task runs: %w", err)
	}

	return nil
}
