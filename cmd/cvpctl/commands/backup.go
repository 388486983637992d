package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/netauto/cvpctl/internal/app/backup"
)

type BackupCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	directory string
	format    string
}

// NewBackupCommand returns the backup command.
func NewBackupCommand(rootCmd *RootCommand, app *kingpin.Application) *BackupCommand {
	c := &BackupCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("backup", "Save all the configlets of the server as JSON files.")
	c.Cmd.Flag("backup", "Destination directory, CVP_BACKUP by default.").Short('b').StringVar(&c.directory)
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c BackupCommand) Name() string { return c.Cmd.FullCommand() }

func (c BackupCommand) Run(ctx context.Context) error {
	dir := c.directory
	if dir == "" {
		dir = c.rootCmd.Config.BackupDir
	}

	client, err := c.rootCmd.newClient()
	if err != nil {
		return err
	}

	svc, err := backup.NewService(backup.ServiceConfig{
		Client: client,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Files written before a failure are printed too.
	files, err := svc.Run(ctx, backup.Request{Directory: dir})
	if perr := c.rootCmd.newPrinter(c.format).PrintBackup(files); perr != nil {
		return fmt.Errorf("could not print backup: %w", perr)
	}

	return err
}
