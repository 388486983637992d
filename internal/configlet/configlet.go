// Package configlet manages the lifecycle of a single configlet on the server:
// creation from a local file, updates, device attachment and deployment.
package configlet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/netauto/cvpctl/internal/cvp"
	"github.com/netauto/cvpctl/internal/inventory"
	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/task"
)

const (
	appNameApply  = "Apply configlet to device"
	appNameRemove = "CVP Configlet Python Manager"
	appNameDeploy = "Update devices"
)

// TaskRunner executes a server task and waits for its completion.
type TaskRunner interface {
	Run(ctx context.Context, req task.RunRequest) (*model.TaskRun, error)
}

// ServiceConfig is the configuration for the configlet service.
type ServiceConfig struct {
	Client     cvp.Client
	TaskRunner TaskRunner
	// ReadFile reads local configlet files, os.ReadFile by default.
	ReadFile func(name string) ([]byte, error)
	Logger   log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Client == nil {
		return fmt.Errorf("client is required")
	}

	if c.TaskRunner == nil {
		return fmt.Errorf("task runner is required")
	}

	if c.ReadFile == nil {
		c.ReadFile = os.ReadFile
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "configlet.Service"})

	return nil
}

// Service opens configlet managers.
type Service struct {
	client   cvp.Client
	runner   TaskRunner
	readFile func(name string) ([]byte, error)
	logger   log.Logger
}

// NewService returns a new configlet service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client:   cfg.Client,
		runner:   cfg.TaskRunner,
		readFile: cfg.ReadFile,
		logger:   cfg.Logger,
	}, nil
}

// Ref identifies a configlet. When only the file is set the file base name is
// used as the configlet name.
type Ref struct {
	Name string
	File string
}

func (r Ref) name() string {
	if r.Name != "" {
		return r.Name
	}
	return filepath.Base(r.File)
}

// Open looks the configlet up on the server and, when present, discovers the
// devices it is attached to.
func (s *Service) Open(ctx context.Context, ref Ref) (*Manager, error) {
	if ref.Name == "" && ref.File == "" {
		return nil, fmt.Errorf("configlet name or file is required: %w", model.ErrNotValid)
	}

	inv, err := inventory.Load(ctx, s.client)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		svc:    s,
		inv:    inv,
		name:   ref.name(),
		file:   ref.File,
		logger: s.logger.WithValues(log.Kv{"configlet": ref.name()}),
	}

	remote, err := s.client.GetConfigletByName(ctx, m.name)
	switch {
	case errors.Is(err, model.ErrNotFound):
		m.logger.Warningf("Configlet not found on server")
		return m, nil
	case err != nil:
		return nil, fmt.Errorf("could not look up configlet: %w", err)
	}
	m.remote = remote
	m.logger.Infof("Configlet found on server")

	if err := m.refreshDevices(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// Manager works on a single configlet.
type Manager struct {
	svc     *Service
	inv     *inventory.Inventory
	name    string
	file    string
	remote  *model.Configlet
	devices []model.Device
	logger  log.Logger
}

// Name returns the configlet name.
func (m *Manager) Name() string { return m.name }

// OnServer returns true when the configlet exists on the server.
func (m *Manager) OnServer() bool { return m.remote != nil }

// Configlet returns the server configlet, nil when it doesn't exist.
func (m *Manager) Configlet() *model.Configlet { return m.remote }

// Devices returns the devices the configlet is attached to.
func (m *Manager) Devices() []model.Device { return m.devices }

// refreshDevices scans every inventory device for the configlet.
func (m *Manager) refreshDevices(ctx context.Context) error {
	m.devices = nil
	for _, d := range m.inv.Devices() {
		if d.SystemMacAddress == "" {
			continue
		}

		cls, err := m.svc.client.GetConfigletsByDevice(ctx, d.SystemMacAddress)
		if err != nil {
			return fmt.Errorf("could not get configlets of %s: %w", d.Hostname, err)
		}

		for _, cl := range cls {
			if cl.Name == m.name {
				m.logger.Debugf("Configlet applied to %s (%s)", d.Hostname, d.SystemMacAddress)
				m.devices = append(m.devices, d)
				break
			}
		}
	}

	return nil
}

func (m *Manager) readConfig() (string, error) {
	if m.file == "" {
		return "", fmt.Errorf("configlet %q has no local file: %w", m.name, model.ErrNotValid)
	}

	data, err := m.svc.readFile(m.file)
	if err != nil {
		return "", fmt.Errorf("could not read configlet file: %w", err)
	}

	return string(data), nil
}

// Create adds the configlet to the server using the local file content and
// attaches it to the devices. It returns the created task IDs.
func (m *Manager) Create(ctx context.Context, hostnames []string) ([]string, error) {
	if m.OnServer() {
		return nil, fmt.Errorf("configlet %q: %w", m.name, model.ErrAlreadyExists)
	}

	config, err := m.readConfig()
	if err != nil {
		return nil, err
	}

	m.logger.Infof("Create configlet")
	key, err := m.svc.client.AddConfiglet(ctx, m.name, config)
	if err != nil {
		return nil, err
	}
	m.remote = &model.Configlet{Key: key, Name: m.name, Config: config}

	return m.AddDevices(ctx, hostnames)
}

// Update pushes the local file content to the server configlet. It returns
// false when the server content is already the same.
func (m *Manager) Update(ctx context.Context) (bool, error) {
	if !m.OnServer() {
		return false, fmt.Errorf("configlet %q: %w", m.name, model.ErrNotFound)
	}

	config, err := m.readConfig()
	if err != nil {
		return false, err
	}

	d := diffConfig(m.remote.Config, config)
	if !d.Changed() {
		m.logger.Infof("Configlet already up to date")
		return false, nil
	}
	m.logger.Infof("Configlet is going to be updated with local config (%d lines added, %d lines removed)", d.Added, d.Removed)
	m.logger.Debugf("Configlet changes:\n%s", d.Text)

	updated := *m.remote
	updated.Config = config
	if err := m.svc.client.UpdateConfiglet(ctx, updated); err != nil {
		return false, err
	}
	m.remote = &updated

	return true, nil
}

// Delete detaches the configlet from all its devices and removes it from
// the server.
func (m *Manager) Delete(ctx context.Context) error {
	if !m.OnServer() || m.remote.Key == "" {
		return fmt.Errorf("configlet %q not configured, can't remove it: %w", m.name, model.ErrNotFound)
	}

	for _, d := range m.devices {
		m.logger.Infof("[%s] Remove configlet", d.Hostname)
		if _, err := m.svc.client.RemoveConfiglets(ctx, appNameRemove, d, []model.Configlet{*m.remote}); err != nil {
			return err
		}
	}

	m.logger.Infof("Remove configlet from server")
	if err := m.svc.client.DeleteConfiglet(ctx, *m.remote); err != nil {
		return err
	}
	m.remote = nil
	m.devices = nil

	return nil
}

// AddDevices attaches the configlet to the devices, unknown hostnames are
// ignored. The created tasks are returned without being executed.
func (m *Manager) AddDevices(ctx context.Context, hostnames []string) ([]string, error) {
	if !m.OnServer() {
		return nil, fmt.Errorf("configlet %q: %w", m.name, model.ErrNotFound)
	}

	var taskIDs []string
	for _, h := range hostnames {
		d, err := m.inv.Device(h)
		if err != nil {
			m.logger.Warningf("Device %s not found on server, ignoring", h)
			continue
		}

		m.logger.Infof("[%s] Apply configlet", d.Hostname)
		ids, err := m.svc.client.ApplyConfiglets(ctx, appNameApply, *d, []model.Configlet{*m.remote}, true)
		if err != nil {
			return taskIDs, err
		}
		taskIDs = append(taskIDs, ids...)
		m.devices = appendDevice(m.devices, *d)
	}

	return taskIDs, nil
}

// RemoveDevices detaches the configlet from the devices, unknown hostnames are
// ignored. The created tasks are returned without being executed.
func (m *Manager) RemoveDevices(ctx context.Context, hostnames []string) ([]string, error) {
	if !m.OnServer() {
		return nil, fmt.Errorf("configlet %q: %w", m.name, model.ErrNotFound)
	}

	var taskIDs []string
	for _, h := range hostnames {
		d, err := m.inv.Device(h)
		if err != nil {
			m.logger.Warningf("Device %s not found on server, ignoring", h)
			continue
		}

		m.logger.Infof("[%s] Remove configlet", d.Hostname)
		ids, err := m.svc.client.RemoveConfiglets(ctx, appNameRemove, *d, []model.Configlet{*m.remote})
		if err != nil {
			return taskIDs, err
		}
		taskIDs = append(taskIDs, ids...)
		m.devices = removeDevice(m.devices, d.Hostname)
	}

	return taskIDs, nil
}

// Deploy applies the configlet to the device creating a task, then executes the
// task and waits for it. It returns nil when the server didn't create a task.
func (m *Manager) Deploy(ctx context.Context, d model.Device, maxAttempts int) (*model.TaskRun, error) {
	if !m.OnServer() {
		return nil, fmt.Errorf("configlet %q: %w", m.name, model.ErrNotFound)
	}

	m.logger.Warningf("[%s] Configlet is going to be deployed immediately", d.Hostname)
	ids, err := m.svc.client.ApplyConfiglets(ctx, appNameDeploy, d, []model.Configlet{*m.remote}, true)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		m.logger.Infof("[%s] No task created, nothing to deploy", d.Hostname)
		return nil, nil
	}

	return m.svc.runner.Run(ctx, task.RunRequest{
		TaskID:      ids[0],
		Hostname:    d.Hostname,
		MaxAttempts: maxAttempts,
	})
}

// DeployAll deploys the configlet on the devices, or on all the attached
// devices when devs is nil. Devices without the information required to
// deploy are skipped. All the task runs are returned, only the completed ones
// mean the device has been updated.
func (m *Manager) DeployAll(ctx context.Context, devs []model.Device, maxAttempts int) ([]model.TaskRun, error) {
	if devs == nil {
		devs = m.devices
	}

	m.logger.Warningf("Start tasks to deploy configlet to %d devices", len(devs))
	var runs []model.TaskRun
	for _, d := range devs {
		if !d.Deployable() {
			m.logger.Warningf("[%s] Information is missing to deploy the configlet, skipping", d.Hostname)
			continue
		}

		run, err := m.Deploy(ctx, d, maxAttempts)
		if err != nil {
			return runs, fmt.Errorf("could not deploy on %s: %w", d.Hostname, err)
		}
		if run == nil {
			continue
		}
		runs = append(runs, *run)

		if run.Completed() {
			m.logger.Infof("[%s] Updated", d.Hostname)
		} else {
			m.logger.Errorf("[%s] Not updated as expected, status is %s", d.Hostname, run.Status)
		}
	}

	return runs, nil
}

// DeployHosts deploys the configlet on the devices with the hostnames, unknown
// hostnames are ignored.
func (m *Manager) DeployHosts(ctx context.Context, hostnames []string, maxAttempts int) ([]model.TaskRun, error) {
	devs := []model.Device{}
	for _, h := range hostnames {
		d, err := m.inv.Device(h)
		if err != nil {
			m.logger.Warningf("Device %s not found on server, ignoring", h)
			continue
		}
		devs = append(devs, *d)
	}

	return m.DeployAll(ctx, devs, maxAttempts)
}

func appendDevice(devs []model.Device, d model.Device) []model.Device {
	for _, dd := range devs {
		if dd.Hostname == d.Hostname {
			return devs
		}
	}
	return append(devs, d)
}

func removeDevice(devs []model.Device, hostname string) []model.Device {
	res := devs[:0]
	for _, d := range devs {
		if d.Hostname != hostname {
			res = append(res, d)
		}
	}
	return res
}
