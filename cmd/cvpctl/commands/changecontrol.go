package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/netauto/cvpctl/internal/changecontrol"
	"github.com/netauto/cvpctl/internal/model"
)

type ChangeControlCreateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	name             string
	scheduleAt       string
	manual           bool
	mode             string
	timeZone         string
	country          string
	snapshotTemplate string
	continueOnError  bool
	taskIDs          []string
	format           string
}

// NewChangeControlCreateCommand returns the change-control create command.
func NewChangeControlCreateCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *ChangeControlCreateCommand {
	c := &ChangeControlCreateCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("create", "Create a change control with all the pending tasks.")
	c.Cmd.Flag("name", "Change control name, spaces are replaced by underscores.").Default(changecontrol.DefaultName).StringVar(&c.name)
	c.Cmd.Flag("schedule-at", "Execution time ("+changecontrol.ScheduleLayout+"), in 3 minutes by default.").StringVar(&c.scheduleAt)
	c.Cmd.Flag("manual", "Don't schedule the change control.").BoolVar(&c.manual)
	c.Cmd.Flag("mode", "Task ordering (linear, incremental).").Default(string(model.ChangeOrderModeLinear)).EnumVar(&c.mode, string(model.ChangeOrderModeLinear), string(model.ChangeOrderModeIncremental))
	c.Cmd.Flag("timezone", "Schedule timezone, CVP_TZ by default.").StringVar(&c.timeZone)
	c.Cmd.Flag("country", "Schedule country, CVP_COUNTRY by default.").StringVar(&c.country)
	c.Cmd.Flag("snapshot-template", "Snapshot template key.").Default(changecontrol.DefaultSnapshotTemplate).StringVar(&c.snapshotTemplate)
	c.Cmd.Flag("continue-on-error", "Don't stop the change control on the first task error.").BoolVar(&c.continueOnError)
	c.Cmd.Flag("task-id", "Task to include besides the pending ones (repeatable).").StringsVar(&c.taskIDs)
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c ChangeControlCreateCommand) Name() string { return c.Cmd.FullCommand() }

func (c ChangeControlCreateCommand) Run(ctx context.Context) error {
	client, err := c.rootCmd.newClient()
	if err != nil {
		return err
	}

	svc, err := changecontrol.NewService(changecontrol.ServiceConfig{
		Client:   client,
		TimeZone: c.rootCmd.Config.TimeZone,
		Country:  c.rootCmd.Config.Country,
		Logger:   c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	b, err := svc.New(ctx, strings.ReplaceAll(c.name, " ", "_"))
	if err != nil {
		return err
	}
	for _, id := range c.taskIDs {
		b.AddTask(model.Task{ID: id})
	}

	res, err := b.Create(ctx, changecontrol.CreateOptions{
		Mode:             model.ChangeOrderMode(c.mode),
		ScheduleAt:       c.scheduleAt,
		Manual:           c.manual,
		TimeZone:         c.timeZone,
		Country:          c.country,
		SnapshotTemplate: c.snapshotTemplate,
		ContinueOnError:  c.continueOnError,
	})
	if err != nil {
		return err
	}

	if err := c.rootCmd.newPrinter(c.format).PrintChangeControls([]model.ChangeControlResult{*res}); err != nil {
		return fmt.Errorf("could not print change control: %w", err)
	}

	return nil
}
