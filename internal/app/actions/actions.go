package actions

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/netauto/cvpctl/internal/changecontrol"
	"github.com/netauto/cvpctl/internal/configlet"
	"github.com/netauto/cvpctl/internal/container"
	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/task"
)

const (
	// DefaultPause is the time waited between two actions.
	DefaultPause = 10 * time.Second

	// noSnapshot is the snapshot template sent when the action doesn't set one.
	noSnapshot = "None"
)

// ConfigletOpener opens configlet managers.
type ConfigletOpener interface {
	Open(ctx context.Context, ref configlet.Ref) (*configlet.Manager, error)
}

// ContainerOpener opens container managers.
type ContainerOpener interface {
	Open(ctx context.Context, name string) (*container.Manager, error)
}

// ChangeControlBuilder starts change controls.
type ChangeControlBuilder interface {
	New(ctx context.Context, name string) (*changecontrol.Builder, error)
}

// TaskRunner executes server tasks one after the other and waits for them.
type TaskRunner interface {
	RunAll(ctx context.Context, taskIDs []string, maxAttempts int) ([]model.TaskRun, error)
}

// ServiceConfig is the configuration for the actions service.
type ServiceConfig struct {
	Configlets     ConfigletOpener
	Containers     ContainerOpener
	ChangeControls ChangeControlBuilder
	TaskRunner     TaskRunner
	// MaxAttempts is the status checks budget of every task wait, zero
	// doesn't check the status at all.
	MaxAttempts int
	// Pause is the wait between actions, DefaultPause when zero. Negative
	// disables it.
	Pause  time.Duration
	Sleep  task.SleepFunc
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Configlets == nil {
		return fmt.Errorf("configlet opener is required")
	}

	if c.Containers == nil {
		return fmt.Errorf("container opener is required")
	}

	if c.ChangeControls == nil {
		return fmt.Errorf("change control builder is required")
	}

	if c.TaskRunner == nil {
		return fmt.Errorf("task runner is required")
	}

	if c.MaxAttempts < 0 {
		return fmt.Errorf("max attempts can't be negative")
	}

	switch {
	case c.Pause == 0:
		c.Pause = DefaultPause
	case c.Pause < 0:
		c.Pause = 0
	}

	if c.Sleep == nil {
		c.Sleep = task.SleepContext
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Actions"})

	return nil
}

// Service runs the actions of an actions file against the server.
type Service struct {
	configlets     ConfigletOpener
	containers     ContainerOpener
	changeControls ChangeControlBuilder
	runner         TaskRunner
	maxAttempts    int
	pause          time.Duration
	sleep          task.SleepFunc
	logger         log.Logger
}

// NewService creates a new actions service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		configlets:     cfg.Configlets,
		containers:     cfg.Containers,
		changeControls: cfg.ChangeControls,
		runner:         cfg.TaskRunner,
		maxAttempts:    cfg.MaxAttempts,
		pause:          cfg.Pause,
		sleep:          cfg.Sleep,
		logger:         cfg.Logger,
	}, nil
}

// Request represents an actions run.
type Request struct {
	Actions []model.Action
	// Types are the action types handled, the rest are skipped. Empty handles
	// all of them.
	Types []model.ActionType
}

// Result is what an actions run did on the server.
type Result struct {
	Runs           []model.TaskRun
	ChangeControls []model.ChangeControlResult
	// Executed is the number of actions handled, skipped ones don't count.
	Executed int
}

// Incomplete returns the number of task runs that did not complete.
func (r Result) Incomplete() int {
	n := 0
	for _, run := range r.Runs {
		if !run.Completed() {
			n++
		}
	}
	return n
}

// Run executes the actions in order, pausing between them. An action without
// type stops the run, unsupported ones are skipped. Server errors stop the run
// and are returned with the result so far.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	res := &Result{}
	for i, a := range req.Actions {
		if i > 0 && s.pause > 0 {
			s.logger.Infof("Wait %s before next action", s.pause)
			if err := s.sleep(ctx, s.pause); err != nil {
				return res, err
			}
		}

		logger := s.logger.WithValues(log.Kv{"action": a.Name})
		if a.Type == "" {
			logger.Errorf("Action %q does not have type defined, stopping", a.Name)
			break
		}

		if len(req.Types) > 0 && !slices.Contains(req.Types, a.Type) {
			logger.Warningf("Action type %q is not supported here, skipping", a.Type)
			continue
		}

		var err error
		switch a.Type {
		case model.ActionTypeConfiglet:
			err = s.runConfiglet(ctx, logger, a, res)
		case model.ActionTypeContainer:
			err = s.runContainer(ctx, logger, a, res)
		case model.ActionTypeChangeControl:
			err = s.runChangeControl(ctx, logger, a, res)
		default:
			logger.Warningf("Action type %q is not supported, skipping", a.Type)
			continue
		}
		if err != nil {
			return res, fmt.Errorf("action %q failed: %w", a.Name, err)
		}
		res.Executed++
	}

	return res, nil
}

func (s *Service) runConfiglet(ctx context.Context, logger log.Logger, a model.Action, res *Result) error {
	if a.Configlet == "" {
		logger.Errorf("Configlet action without configlet file, skipping")
		return nil
	}

	m, err := s.configlets.Open(ctx, configlet.Ref{File: a.Configlet})
	if err != nil {
		return err
	}

	switch a.Action {
	case model.ActionAdd:
		logger.Infof("Configlet %s is going to be created", m.Name())
		return s.configletAdd(ctx, logger, m, a, res)
	case model.ActionUpdate:
		logger.Infof("Configlet %s is going to be updated", m.Name())
		return s.configletUpdate(ctx, logger, m, a, res)
	case model.ActionDelete:
		logger.Infof("Configlet %s is going to be deleted", m.Name())
		return m.Delete(ctx)
	case model.ActionAddDevices:
		logger.Infof("Configlet %s is going to be added to devices", m.Name())
		if _, err := m.AddDevices(ctx, a.Devices); err != nil {
			return err
		}
		return s.deployAttached(ctx, logger, m, a, res)
	case model.ActionRemoveDevices:
		logger.Infof("Configlet %s is going to be removed from devices", m.Name())
		ids, err := m.RemoveDevices(ctx, a.Devices)
		if err != nil {
			return err
		}
		if !a.ShouldApply() {
			logDeployNotSet(logger)
			return nil
		}
		// Detached devices are no longer deployed by the configlet, their
		// removal tasks are run instead.
		runs, err := s.runner.RunAll(ctx, ids, s.maxAttempts)
		res.Runs = append(res.Runs, runs...)
		return err
	default:
		logger.Errorf("Unsupported configlet action %q, use add, update, delete, add-devices or remove-devices", a.Action)
		return nil
	}
}

func (s *Service) configletAdd(ctx context.Context, logger log.Logger, m *configlet.Manager, a model.Action, res *Result) error {
	if m.OnServer() {
		logger.Warningf("Configlet %s is already configured on server, fallback to update", m.Name())
		return s.configletUpdate(ctx, logger, m, a, res)
	}

	if len(a.Devices) == 0 {
		logger.Errorf("Configlet has no devices configured, cannot create configlet on server")
		return nil
	}

	if _, err := m.Create(ctx, a.Devices); err != nil {
		return err
	}

	return s.deployAttached(ctx, logger, m, a, res)
}

func (s *Service) configletUpdate(ctx context.Context, logger log.Logger, m *configlet.Manager, a model.Action, res *Result) error {
	if !m.OnServer() {
		logger.Warningf("Configlet %s is not configured on server, fallback to add", m.Name())
		return s.configletAdd(ctx, logger, m, a, res)
	}

	if _, err := m.Update(ctx); err != nil {
		return err
	}

	if !a.ShouldApply() {
		logDeployNotSet(logger)
		return nil
	}

	var runs []model.TaskRun
	var err error
	if len(a.Devices) == 0 {
		logger.Infof("Deploy target is set to all attached devices")
		runs, err = m.DeployAll(ctx, nil, s.maxAttempts)
	} else {
		logger.Infof("Configlet will be deployed on %s", strings.Join(a.Devices, ", "))
		runs, err = m.DeployHosts(ctx, a.Devices, s.maxAttempts)
	}
	res.Runs = append(res.Runs, runs...)

	return err
}

func (s *Service) deployAttached(ctx context.Context, logger log.Logger, m *configlet.Manager, a model.Action, res *Result) error {
	if !a.ShouldApply() {
		logDeployNotSet(logger)
		return nil
	}

	logger.Infof("Deploy target is set to all attached devices")
	runs, err := m.DeployAll(ctx, nil, s.maxAttempts)
	res.Runs = append(res.Runs, runs...)

	return err
}

func logDeployNotSet(logger log.Logger) {
	logger.Warningf("Deploy option has not been set, tasks must be run manually")
}

func (s *Service) runContainer(ctx context.Context, logger log.Logger, a model.Action, res *Result) error {
	if a.Container == "" {
		logger.Errorf("Container action without container, skipping")
		return nil
	}

	m, err := s.containers.Open(ctx, a.Container)
	if err != nil {
		return err
	}

	switch a.Action {
	case model.ActionAttachDevice:
		for _, h := range a.Devices {
			if m.IsDeviceAttached(h) {
				logger.Warningf("Device %s is already part of container %s, skipping", h, m.Name())
				continue
			}
			logger.Infof("Device %s is going to be moved to %s", h, m.Name())
		}
		runs, err := m.AttachDevices(ctx, a.Devices, a.ShouldApply(), s.maxAttempts)
		res.Runs = append(res.Runs, runs...)
		return err
	case model.ActionCreate:
		logger.Infof("Creation of container %s attached to %s", m.Name(), valueOr(a.Parent, container.DefaultParent))
		return m.Create(ctx, a.Parent)
	case model.ActionDestroy:
		logger.Infof("Destruction of container %s", m.Name())
		return m.Destroy(ctx, a.Parent)
	default:
		logger.Errorf("Unsupported container action %q, use attach-device, create or destroy", a.Action)
		return nil
	}
}

func (s *Service) runChangeControl(ctx context.Context, logger log.Logger, a model.Action, res *Result) error {
	name := strings.ReplaceAll(a.Name, " ", "_")
	b, err := s.changeControls.New(ctx, name)
	if err != nil {
		return err
	}

	opts := changecontrol.CreateOptions{
		Mode:             a.Mode,
		ScheduleAt:       a.ScheduleAt,
		Manual:           !a.ShouldApply(),
		TimeZone:         a.TimeZone,
		Country:          a.Country,
		SnapshotTemplate: valueOr(a.SnapshotID, noSnapshot),
	}
	if opts.Manual {
		logger.Warningf("Change control must be executed manually")
	} else {
		logger.Infof("Scheduling change control")
	}

	cc, err := b.Create(ctx, opts)
	if err != nil {
		return err
	}
	logger.Infof("Change control creation is %s (id %s)", cc.Status, cc.ID)
	res.ChangeControls = append(res.ChangeControls, *cc)

	return nil
}

func valueOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
