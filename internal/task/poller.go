package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
)

const (
	// DefaultMaxAttempts is the number of status checks used when callers don't
	// have a better value.
	DefaultMaxAttempts = 10
	// DefaultInterval is the time waited before every status check.
	DefaultInterval = 1 * time.Second
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// PollerConfig is the configuration for the task poller.
type PollerConfig struct {
	StatusGetter StatusGetter
	Interval     time.Duration
	// Sleep is used between status checks, mainly replaced on tests.
	Sleep  SleepFunc
	Logger log.Logger
}

func (c *PollerConfig) defaults() error {
	if c.StatusGetter == nil {
		return fmt.Errorf("status getter is required")
	}

	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}

	if c.Sleep == nil {
		c.Sleep = SleepContext
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "task.Poller"})

	return nil
}

// Poller waits for server tasks to complete.
//
// It holds no state between waits, so a single poller can be used to wait for
// different tasks at the same time as long as its status getter allows it.
type Poller struct {
	getter   StatusGetter
	interval time.Duration
	sleep    SleepFunc
	logger   log.Logger
}

// NewPoller returns a new task poller.
func NewPoller(cfg PollerConfig) (*Poller, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Poller{
		getter:   cfg.StatusGetter,
		interval: cfg.Interval,
		sleep:    cfg.Sleep,
		logger:   cfg.Logger,
	}, nil
}

// Result is the outcome of a task wait.
type Result struct {
	TaskID string
	// Status is the last observed status, TaskStatusUnknown if the server
	// was never asked.
	Status   model.TaskStatus
	State    model.TaskWaitState
	Attempts int
}

// Completed returns true when the task reached the completed status.
func (r Result) Completed() bool { return r.State == model.TaskWaitStateCompleted }

// Wait blocks until the task status is completed or maxAttempts status checks
// have been made, waiting one interval before each check.
//
// Running out of attempts is not an error, the result state is set to
// TIMED_OUT and callers decide what it means for them. Status getter errors are
// returned as they are, without retrying.
func (p *Poller) Wait(ctx context.Context, taskID string, maxAttempts int) (*Result, error) {
	if maxAttempts < 0 {
		return nil, fmt.Errorf("max attempts can't be negative (%d): %w", maxAttempts, model.ErrNotValid)
	}

	logger := p.logger.WithValues(log.Kv{"task-id": taskID})
	res := &Result{
		TaskID: taskID,
		Status: model.TaskStatusUnknown,
		State:  model.TaskWaitStateWaiting,
	}

	for res.Attempts < maxAttempts {
		if err := p.sleep(ctx, p.interval); err != nil {
			return nil, fmt.Errorf("waiting for task %s: %w", taskID, err)
		}

		status, err := p.getter.GetTaskStatus(ctx, taskID)
		if err != nil {
			return nil, err
		}
		res.Attempts++
		res.Status = status

		logger.Debugf("Wait for task completion (status: %s, attempt %d/%d)", status, res.Attempts, maxAttempts)
		if status.IsCompleted() {
			res.State = model.TaskWaitStateCompleted
			return res, nil
		}
	}

	res.State = model.TaskWaitStateTimedOut
	logger.Warningf("Task not completed after %d attempts (last status: %s)", res.Attempts, strings.ToUpper(string(res.Status)))

	return res, nil
}

// SleepContext is the default SleepFunc.
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
