// Package changecontrol groups pending server tasks into change controls.
package changecontrol

import (
	"context"
	"fmt"
	"time"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
)

const (
	// DefaultName is the change control name used when none is set.
	DefaultName = "Automated_Change_Control"
	// DefaultSnapshotTemplate is the snapshot template key used by default.
	DefaultSnapshotTemplate = "1708dd89-ff4b-4d1e-b09e-ee490b3e27f0"
	// DefaultType is the change control type.
	DefaultType = "Custom"
	// DefaultTimeZone is the schedule timezone when none is configured.
	DefaultTimeZone = "Europe/Paris"
	// DefaultCountry is the schedule country when none is configured.
	DefaultCountry = "France"
	// DefaultScheduleDelay is how far in the future not scheduled change
	// controls are executed.
	DefaultScheduleDelay = 3 * time.Minute
	// ScheduleLayout is the time layout of schedules.
	ScheduleLayout = "2006-01-02 15:04"
)

// Client is the server surface change controls need.
type Client interface {
	GetPendingTasks(ctx context.Context) ([]model.Task, error)
	CreateChangeControl(ctx context.Context, cc model.ChangeControl) (*model.ChangeControlResult, error)
}

// ServiceConfig is the configuration for the change control service.
type ServiceConfig struct {
	Client   Client
	TimeZone string
	Country  string
	Now      func() time.Time
	Logger   log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Client == nil {
		return fmt.Errorf("client is required")
	}

	if c.TimeZone == "" {
		c.TimeZone = DefaultTimeZone
	}

	if c.Country == "" {
		c.Country = DefaultCountry
	}

	if c.Now == nil {
		c.Now = time.Now
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "changecontrol.Service"})

	return nil
}

// Service prepares change controls.
type Service struct {
	client   Client
	timeZone string
	country  string
	now      func() time.Time
	logger   log.Logger
}

// NewService returns a new change control service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client:   cfg.Client,
		timeZone: cfg.TimeZone,
		country:  cfg.Country,
		now:      cfg.Now,
		logger:   cfg.Logger,
	}, nil
}

// New returns a change control builder loaded with the tasks available on the
// server.
func (s *Service) New(ctx context.Context, name string) (*Builder, error) {
	if name == "" {
		name = DefaultName
	}

	b := &Builder{
		svc:    s,
		name:   name,
		logger: s.logger.WithValues(log.Kv{"change-control": name}),
	}
	if err := b.Refresh(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

// Builder collects tasks and creates a change control with them.
type Builder struct {
	svc       *Service
	name      string
	available []model.Task
	changes   []model.Change
	logger    log.Logger
}

// Name returns the change control name.
func (b *Builder) Name() string { return b.name }

// Refresh gets the tasks available for the change control from the server.
func (b *Builder) Refresh(ctx context.Context) error {
	b.logger.Debugf("Getting list of available tasks for change control")
	tasks, err := b.svc.client.GetPendingTasks(ctx)
	if err != nil {
		return fmt.Errorf("could not get available tasks: %w", err)
	}
	b.available = tasks
	b.changes = nil

	return nil
}

// Tasks returns the tasks that will be part of the change control.
func (b *Builder) Tasks() []model.Task { return b.available }

// AddTask adds a task to the change control, tasks already included are
// ignored.
func (b *Builder) AddTask(t model.Task) {
	for _, a := range b.available {
		if a.ID == t.ID {
			return
		}
	}
	b.available = append(b.available, t)
	b.changes = nil
}

// Changes returns the tasks positioned following the mode: linear puts every
// task at position 1 and incremental one after the other starting at 1.
func (b *Builder) Changes(mode model.ChangeOrderMode) ([]model.Change, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	changes := make([]model.Change, 0, len(b.available))
	pos := 1
	for _, t := range b.available {
		changes = append(changes, model.Change{TaskID: t.ID, Order: pos})
		b.logger.Debugf("Adding task %s to position %d", t.ID, pos)
		if mode == model.ChangeOrderModeIncremental {
			pos++
		}
	}
	b.changes = changes

	return changes, nil
}

// CreateOptions customize the change control creation, zero values use the
// defaults.
type CreateOptions struct {
	Mode model.ChangeOrderMode
	// ScheduleAt uses ScheduleLayout, when empty the change control is
	// scheduled DefaultScheduleDelay from now unless Manual is set.
	ScheduleAt string
	// Manual leaves the change control without schedule.
	Manual           bool
	TimeZone         string
	Country          string
	SnapshotTemplate string
	Type             string
	// ContinueOnError disables stopping the change control on the first
	// task error.
	ContinueOnError bool
}

// Create creates the change control on the server.
func (b *Builder) Create(ctx context.Context, opts CreateOptions) (*model.ChangeControlResult, error) {
	if opts.Mode == "" {
		opts.Mode = model.ChangeOrderModeLinear
	}

	changes := b.changes
	if len(changes) == 0 {
		var err error
		changes, err = b.Changes(opts.Mode)
		if err != nil {
			return nil, err
		}
	}
	if len(changes) == 0 {
		return nil, fmt.Errorf("no tasks available for change control %q: %w", b.name, model.ErrNotValid)
	}

	cc := model.ChangeControl{
		Name:             b.name,
		Changes:          changes,
		TimeZone:         valueOr(opts.TimeZone, b.svc.timeZone),
		Country:          valueOr(opts.Country, b.svc.country),
		ScheduleAt:       opts.ScheduleAt,
		SnapshotTemplate: valueOr(opts.SnapshotTemplate, DefaultSnapshotTemplate),
		Type:             valueOr(opts.Type, DefaultType),
		StopOnError:      !opts.ContinueOnError,
	}

	switch {
	case opts.Manual:
		cc.ScheduleAt = ""
	case cc.ScheduleAt == "":
		cc.ScheduleAt = b.svc.now().Add(DefaultScheduleDelay).Format(ScheduleLayout)
		b.logger.Debugf("Execution scheduled in %s (%s)", DefaultScheduleDelay, cc.ScheduleAt)
	default:
		if _, err := time.Parse(ScheduleLayout, cc.ScheduleAt); err != nil {
			return nil, fmt.Errorf("invalid schedule %q, expected format %q: %w", cc.ScheduleAt, ScheduleLayout, model.ErrNotValid)
		}
	}

	for _, ch := range changes {
		b.logger.Debugf("Task %s at position %d", ch.TaskID, ch.Order)
	}

	res, err := b.svc.client.CreateChangeControl(ctx, cc)
	if err != nil {
		b.logger.Errorf("Cannot create change control: %s", err)
		return nil, fmt.Errorf("could not create change control: %w", err)
	}
	b.logger.Infof("Change control %s created", res.ID)

	return res, nil
}

func valueOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
