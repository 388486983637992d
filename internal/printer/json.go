package printer

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/netauto/cvpctl/internal/model"
)

// JSONPrinter prints results as indented JSON documents.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

type taskOutput struct {
	ID          string     `json:"id"`
	Hostname    string     `json:"hostname,omitempty"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	CreatedBy   string     `json:"created_by,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type taskRunOutput struct {
	ID         string     `json:"id,omitempty"`
	TaskID     string     `json:"task_id"`
	Hostname   string     `json:"hostname,omitempty"`
	Status     string     `json:"status"`
	State      string     `json:"state"`
	Attempts   int        `json:"attempts"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type changeControlOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type backupFileOutput struct {
	Configlet string `json:"configlet"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}

type messageOutput struct {
	Message string `json:"message"`
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintTasks prints the tasks, an empty list when there are none.
func (j *JSONPrinter) PrintTasks(tasks []model.Task) error {
	out := make([]taskOutput, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskOutput{
			ID:          t.ID,
			Hostname:    t.Hostname,
			Status:      string(t.Status),
			Description: t.Description,
			CreatedBy:   t.CreatedBy,
			CreatedAt:   utcOrNil(t.CreatedAt),
		})
	}

	return j.encode(out)
}

// PrintTaskRuns prints task runs with their uppercased last status.
func (j *JSONPrinter) PrintTaskRuns(runs []model.TaskRun) error {
	out := make([]taskRunOutput, 0, len(runs))
	for _, r := range runs {
		out = append(out, taskRunOutput{
			ID:         r.ID,
			TaskID:     r.TaskID,
			Hostname:   r.Hostname,
			Status:     strings.ToUpper(string(r.Status)),
			State:      string(r.State),
			Attempts:   r.Attempts,
			StartedAt:  utcOrNil(r.StartedAt),
			FinishedAt: utcOrNil(r.FinishedAt),
		})
	}

	return j.encode(out)
}

// PrintChangeControls prints created change controls.
func (j *JSONPrinter) PrintChangeControls(ccs []model.ChangeControlResult) error {
	out := make([]changeControlOutput, 0, len(ccs))
	for _, cc := range ccs {
		out = append(out, changeControlOutput{ID: cc.ID, Status: cc.Status})
	}

	return j.encode(out)
}

// PrintBackup prints the written backup files.
func (j *JSONPrinter) PrintBackup(files []model.BackupFile) error {
	out := make([]backupFileOutput, 0, len(files))
	for _, f := range files {
		out = append(out, backupFileOutput(f))
	}

	return j.encode(out)
}

// PrintMessage prints a simple message.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func utcOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}
