package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/netauto/cvpctl/internal/model"
)

// TablePrinter prints results as aligned text tables.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

func (t *TablePrinter) table(header string, rows func(tw io.Writer)) error {
	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}

// PrintTasks prints the tasks, nothing when there are none.
func (t *TablePrinter) PrintTasks(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	return t.table("ID\tDEVICE\tSTATUS\tDESCRIPTION\tCREATED", func(tw io.Writer) {
		for _, tk := range tasks {
			created := "-"
			if !tk.CreatedAt.IsZero() {
				created = TimeAgo(tk.CreatedAt)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", tk.ID, valueOr(tk.Hostname, "-"), tk.Status, tk.Description, created)
		}
	})
}

// PrintTaskRuns prints task runs with their uppercased last status.
func (t *TablePrinter) PrintTaskRuns(runs []model.TaskRun) error {
	if len(runs) == 0 {
		return nil
	}

	return t.table("TASK\tDEVICE\tSTATUS\tSTATE\tATTEMPTS\tDURATION\tSTARTED", func(tw io.Writer) {
		for _, r := range runs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				r.TaskID,
				valueOr(r.Hostname, "-"),
				strings.ToUpper(string(r.Status)),
				r.State,
				r.Attempts,
				FormatDuration(r.StartedAt, r.FinishedAt),
				valueOr(FormatTimestamp(r.StartedAt), "-"),
			)
		}
	})
}

// PrintChangeControls prints created change controls.
func (t *TablePrinter) PrintChangeControls(ccs []model.ChangeControlResult) error {
	if len(ccs) == 0 {
		return nil
	}

	return t.table("CHANGE CONTROL\tSTATUS", func(tw io.Writer) {
		for _, cc := range ccs {
			fmt.Fprintf(tw, "%s\t%s\n", cc.ID, cc.Status)
		}
	})
}

// PrintBackup prints the written backup files.
func (t *TablePrinter) PrintBackup(files []model.BackupFile) error {
	if len(files) == 0 {
		return nil
	}

	return t.table("CONFIGLET\tFILE\tSIZE", func(tw io.Writer) {
		for _, f := range files {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Configlet, f.Path, FormatBytes(f.SizeBytes))
		}
	})
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}

func valueOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
