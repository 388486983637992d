package taskrun

import (
	"context"
	"fmt"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/task"
)

// TaskLister returns the tasks waiting to be executed on the server.
type TaskLister interface {
	GetPendingTasks(ctx context.Context) ([]model.Task, error)
}

// TaskRunner executes a server task and waits for its completion.
type TaskRunner interface {
	Run(ctx context.Context, req task.RunRequest) (*model.TaskRun, error)
}

// TaskWaiter waits for a server task without executing it.
type TaskWaiter interface {
	Wait(ctx context.Context, taskID string, maxAttempts int) (*task.Result, error)
}

// ServiceConfig is the configuration for the task run service.
type ServiceConfig struct {
	Lister TaskLister
	Runner TaskRunner
	Waiter TaskWaiter
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Lister == nil {
		return fmt.Errorf("task lister is required")
	}

	if c.Runner == nil {
		return fmt.Errorf("task runner is required")
	}

	if c.Waiter == nil {
		return fmt.Errorf("task waiter is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.TaskRun"})

	return nil
}

// Service lists and executes the pending tasks of the server.
type Service struct {
	lister TaskLister
	runner TaskRunner
	waiter TaskWaiter
	logger log.Logger
}

// NewService creates a new task run service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		lister: cfg.Lister,
		runner: cfg.Runner,
		waiter: cfg.Waiter,
		logger: cfg.Logger,
	}, nil
}

// List returns the pending tasks.
func (s *Service) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.lister.GetPendingTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list pending tasks: %w", err)
	}
	s.logger.Debugf("Found %d pending tasks", len(tasks))

	return tasks, nil
}

// RunRequest selects the tasks to execute, a single one by ID or all the
// pending ones.
type RunRequest struct {
	TaskID      string
	All         bool
	MaxAttempts int
}

func (r RunRequest) validate() error {
	if r.All && r.TaskID != "" {
		return fmt.Errorf("task id and all can't be used at the same time: %w", model.ErrNotValid)
	}

	if !r.All && r.TaskID == "" {
		return fmt.Errorf("task id is required: %w", model.ErrNotValid)
	}

	if r.MaxAttempts < 0 {
		return fmt.Errorf("max attempts can't be negative: %w", model.ErrNotValid)
	}

	return nil
}

// Run executes the requested tasks one after the other and returns their runs.
// It stops on the first error, the runs made until then are returned.
func (s *Service) Run(ctx context.Context, req RunRequest) ([]model.TaskRun, error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if !req.All {
		run, err := s.runner.Run(ctx, task.RunRequest{TaskID: req.TaskID, MaxAttempts: req.MaxAttempts})
		if err != nil {
			return nil, err
		}
		return []model.TaskRun{*run}, nil
	}

	tasks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	runs := make([]model.TaskRun, 0, len(tasks))
	for _, t := range tasks {
		s.logger.Infof("Found task %s, starting execution", t.ID)
		run, err := s.runner.Run(ctx, task.RunRequest{
			TaskID:      t.ID,
			Hostname:    t.Hostname,
			MaxAttempts: req.MaxAttempts,
		})
		if err != nil {
			return runs, err
		}
		runs = append(runs, *run)
	}

	return runs, nil
}

// Wait waits for a task already executing.
func (s *Service) Wait(ctx context.Context, taskID string, maxAttempts int) (*task.Result, error) {
	if taskID == "" {
		return nil, fmt.Errorf("task id is required: %w", model.ErrNotValid)
	}

	res, err := s.waiter.Wait(ctx, taskID, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("could not wait for task: %w", err)
	}

	return res, nil
}
