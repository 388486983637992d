package task

import (
	"context"

	"github.com/netauto/cvpctl/internal/model"
)

// StatusGetter returns the current status of a server task.
type StatusGetter interface {
	GetTaskStatus(ctx context.Context, taskID string) (model.TaskStatus, error)
}

// StatusGetterFunc is a helper to use functions as StatusGetter.
type StatusGetterFunc func(ctx context.Context, taskID string) (model.TaskStatus, error)

// GetTaskStatus satisfies StatusGetter.
func (f StatusGetterFunc) GetTaskStatus(ctx context.Context, taskID string) (model.TaskStatus, error) {
	return f(ctx, taskID)
}

// Executor asks the server to execute a pending task.
type Executor interface {
	ExecuteTask(ctx context.Context, taskID string) error
}

// Client is the server surface the task runner needs.
type Client interface {
	StatusGetter
	Executor
}
