// Package printer renders command results for humans or machines.
package printer

import "github.com/netauto/cvpctl/internal/model"

// Printer knows how to print command results in different formats.
type Printer interface {
	PrintTasks(tasks []model.Task) error
	PrintTaskRuns(runs []model.TaskRun) error
	PrintChangeControls(ccs []model.ChangeControlResult) error
	PrintBackup(files []model.BackupFile) error
	PrintMessage(msg string) error
}

var (
	_ Printer = &TablePrinter{}
	_ Printer = &JSONPrinter{}
)
