package storage

import (
	"context"

	"github.com/netauto/cvpctl/internal/model"
)

// TaskRunFilter narrows the task runs returned by a listing.
type TaskRunFilter struct {
	// TaskID returns only the runs of this server task when set.
	TaskID string
	// Limit caps the number of runs returned, zero means no limit.
	Limit int
}

// TaskRunRepository is the interface for task run history persistence.
type TaskRunRepository interface {
	CreateTaskRun(ctx context.Context, r model.TaskRun) error
	ListTaskRuns(ctx context.Context, filter TaskRunFilter) ([]model.TaskRun, error)
}
