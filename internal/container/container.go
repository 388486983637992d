// Package container manages a provisioning container: creation, removal and
// moving devices into it.
package container

import (
	"context"
	"errors"
	"fmt"

	"github.com/netauto/cvpctl/internal/cvp"
	"github.com/netauto/cvpctl/internal/inventory"
	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/task"
)

const (
	// DefaultParent is the topology root container.
	DefaultParent = "Tenant"

	appNameMove = "device move"
)

// TaskRunner executes a server task and waits for its completion.
type TaskRunner interface {
	Run(ctx context.Context, req task.RunRequest) (*model.TaskRun, error)
}

// ServiceConfig is the configuration for the container service.
type ServiceConfig struct {
	Client     cvp.Client
	TaskRunner TaskRunner
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Client == nil {
		return fmt.Errorf("client is required")
	}

	if c.TaskRunner == nil {
		return fmt.Errorf("task runner is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "container.Service"})

	return nil
}

// Service opens container managers.
type Service struct {
	client cvp.Client
	runner TaskRunner
	logger log.Logger
}

// NewService returns a new container service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		runner: cfg.TaskRunner,
		logger: cfg.Logger,
	}, nil
}

// Open looks the container up on the server and, when present, gets its
// devices.
func (s *Service) Open(ctx context.Context, name string) (*Manager, error) {
	if name == "" {
		return nil, fmt.Errorf("container name is required: %w", model.ErrNotValid)
	}

	inv, err := inventory.Load(ctx, s.client)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		svc:    s,
		inv:    inv,
		name:   name,
		logger: s.logger.WithValues(log.Kv{"container": name}),
	}

	ct, err := s.lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		m.logger.Warningf("Container not found on server")
		return m, nil
	}
	m.info = ct

	m.devices, err = s.client.GetDevicesInContainer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not get container devices: %w", err)
	}

	return m, nil
}

// lookup returns nil when the container doesn't exist.
func (s *Service) lookup(ctx context.Context, name string) (*model.Container, error) {
	ct, err := s.client.GetContainerByName(ctx, name)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("could not look up container %q: %w", name, err)
	}

	return ct, nil
}

// Manager works on a single container.
type Manager struct {
	svc     *Service
	inv     *inventory.Inventory
	name    string
	info    *model.Container
	devices []model.Device
	pending []pendingTask
	logger  log.Logger
}

type pendingTask struct {
	id       string
	hostname string
}

// Name returns the container name.
func (m *Manager) Name() string { return m.name }

// OnServer returns true when the container exists on the server.
func (m *Manager) OnServer() bool { return m.info != nil }

// Container returns the server container, nil when it doesn't exist.
func (m *Manager) Container() *model.Container { return m.info }

// Devices returns the devices inside the container.
func (m *Manager) Devices() []model.Device { return m.devices }

// PendingTasks returns the IDs of the tasks created and not run yet.
func (m *Manager) PendingTasks() []string {
	ids := make([]string, 0, len(m.pending))
	for _, p := range m.pending {
		ids = append(ids, p.id)
	}
	return ids
}

// Create adds the container under the parent, DefaultParent when empty.
func (m *Manager) Create(ctx context.Context, parent string) error {
	if parent == "" {
		parent = DefaultParent
	}

	if m.OnServer() {
		return fmt.Errorf("container %q already configured on server: %w", m.name, model.ErrAlreadyExists)
	}

	p, err := m.svc.lookup(ctx, parent)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("parent container %q: %w", parent, model.ErrNotFound)
	}

	m.logger.Infof("Create container attached to %s", parent)
	if err := m.svc.client.AddContainer(ctx, m.name, *p); err != nil {
		return err
	}

	ct, err := m.svc.lookup(ctx, m.name)
	if err != nil {
		return err
	}
	m.info = ct

	return nil
}

// Destroy removes the container from the parent, DefaultParent when empty.
// Containers with devices can't be removed.
func (m *Manager) Destroy(ctx context.Context, parent string) error {
	if parent == "" {
		parent = DefaultParent
	}

	if !m.OnServer() {
		return fmt.Errorf("container %q: %w", m.name, model.ErrNotFound)
	}

	if n := len(m.devices); n > 0 {
		return fmt.Errorf("container %q is not empty (%d devices remain): %w", m.name, n, model.ErrNotValid)
	}

	p, err := m.svc.lookup(ctx, parent)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("parent container %q: %w", parent, model.ErrNotFound)
	}

	m.logger.Infof("Delete container")
	if err := m.svc.client.DeleteContainer(ctx, *m.info, *p); err != nil {
		return err
	}
	m.info = nil

	return nil
}

// IsDeviceAttached returns true when the device is inside the container.
func (m *Manager) IsDeviceAttached(hostname string) bool {
	for _, d := range m.devices {
		if d.Hostname == hostname {
			return true
		}
	}
	return false
}

// AttachDevice moves the device into the container. The created task is added
// to the pending tasks and returned, empty when no task was needed.
func (m *Manager) AttachDevice(ctx context.Context, hostname string) (string, error) {
	if !m.OnServer() {
		return "", fmt.Errorf("container %q: %w", m.name, model.ErrNotFound)
	}

	d, err := m.inv.Device(hostname)
	if err != nil {
		return "", err
	}

	if m.IsDeviceAttached(hostname) {
		m.logger.Warningf("Device %s already attached", hostname)
		return "", nil
	}

	m.logger.Infof("Create change to move %s", hostname)
	ids, err := m.svc.client.MoveDeviceToContainer(ctx, appNameMove, *d, *m.info)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", nil
	}

	m.logger.Infof("Task created on server: %s", ids[0])
	m.pending = append(m.pending, pendingTask{id: ids[0], hostname: hostname})
	m.devices = append(m.devices, *d)

	return ids[0], nil
}

// AttachDevices moves all the devices into the container, unknown devices are
// ignored. When deploy is set the created tasks are run.
func (m *Manager) AttachDevices(ctx context.Context, hostnames []string, deploy bool, maxAttempts int) ([]model.TaskRun, error) {
	m.logger.Infof("Attach %d devices", len(hostnames))
	for _, h := range hostnames {
		_, err := m.AttachDevice(ctx, h)
		if errors.Is(err, model.ErrNotFound) && m.OnServer() {
			m.logger.Errorf("Device %s not found on server", h)
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	if !deploy {
		return nil, nil
	}

	return m.RunPending(ctx, maxAttempts)
}

// RunPending runs the pending tasks one after the other and clears them.
func (m *Manager) RunPending(ctx context.Context, maxAttempts int) ([]model.TaskRun, error) {
	m.logger.Infof("Run %d pending tasks", len(m.pending))

	var runs []model.TaskRun
	for len(m.pending) > 0 {
		p := m.pending[0]
		run, err := m.svc.runner.Run(ctx, task.RunRequest{
			TaskID:      p.id,
			Hostname:    p.hostname,
			MaxAttempts: maxAttempts,
		})
		if err != nil {
			return runs, err
		}
		runs = append(runs, *run)
		m.pending = m.pending[1:]
	}

	return runs, nil
}
