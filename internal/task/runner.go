package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/storage"
)

// RunnerConfig is the configuration for the task runner.
type RunnerConfig struct {
	Client     Client
	Repository storage.TaskRunRepository
	Interval   time.Duration
	Sleep      SleepFunc
	Logger     log.Logger
}

func (c *RunnerConfig) defaults() error {
	if c.Client == nil {
		return fmt.Errorf("client is required")
	}

	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "task.Runner"})

	return nil
}

// Runner executes server tasks, waits for them and records the outcome.
type Runner struct {
	executor Executor
	poller   *Poller
	repo     storage.TaskRunRepository
	logger   log.Logger
	now      func() time.Time
}

// NewRunner returns a new task runner.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	poller, err := NewPoller(PollerConfig{
		StatusGetter: cfg.Client,
		Interval:     cfg.Interval,
		Sleep:        cfg.Sleep,
		Logger:       cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create poller: %w", err)
	}

	return &Runner{
		executor: cfg.Client,
		poller:   poller,
		repo:     cfg.Repository,
		logger:   cfg.Logger,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// RunRequest is a task execution request.
type RunRequest struct {
	TaskID string
	// Hostname is the device the task targets, informative only.
	Hostname    string
	MaxAttempts int
}

// Run executes the task on the server and waits for its completion.
func (r *Runner) Run(ctx context.Context, req RunRequest) (*model.TaskRun, error) {
	if req.TaskID == "" {
		return nil, fmt.Errorf("task id is required: %w", model.ErrNotValid)
	}

	startedAt := r.now()
	if err := r.executor.ExecuteTask(ctx, req.TaskID); err != nil {
		return nil, fmt.Errorf("could not execute task %s: %w", req.TaskID, err)
	}

	res, err := r.poller.Wait(ctx, req.TaskID, req.MaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("could not wait for task %s: %w", req.TaskID, err)
	}

	run := model.TaskRun{
		ID:         ulid.Make().String(),
		TaskID:     req.TaskID,
		Hostname:   req.Hostname,
		Status:     res.Status,
		State:      res.State,
		Attempts:   res.Attempts,
		StartedAt:  startedAt,
		FinishedAt: r.now(),
	}
	if err := r.repo.CreateTaskRun(ctx, run); err != nil {
		return nil, fmt.Errorf("could not store task run: %w", err)
	}

	logger := r.logger.WithValues(log.Kv{"task-id": req.TaskID})
	if req.Hostname != "" {
		logger = logger.WithValues(log.Kv{"device": req.Hostname})
	}
	if res.Status.IsFailed() {
		logger.Errorf("Task failed on server: %s", strings.ToUpper(string(res.Status)))
	} else {
		logger.Infof("Task status: %s", strings.ToUpper(string(res.Status)))
	}

	return &run, nil
}

// RunAll runs the tasks one after the other, stopping on the first error.
func (r *Runner) RunAll(ctx context.Context, taskIDs []string, maxAttempts int) ([]model.TaskRun, error) {
	runs := make([]model.TaskRun, 0, len(taskIDs))
	for _, id := range taskIDs {
		run, err := r.Run(ctx, RunRequest{TaskID: id, MaxAttempts: maxAttempts})
		if err != nil {
			return runs, err
		}
		runs = append(runs, *run)
	}

	return runs, nil
}
