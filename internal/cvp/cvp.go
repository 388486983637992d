// Package cvp defines the CloudVision Portal API surface used by the
// automation services. Implementations live in subpackages.
package cvp

import (
	"context"

	"github.com/netauto/cvpctl/internal/model"
)

// Client is the CloudVision Portal API client.
type Client interface {
	// GetInventory returns all the provisioned devices.
	GetInventory(ctx context.Context) ([]model.Device, error)

	// GetConfigletByName returns model.ErrNotFound when the configlet is missing.
	GetConfigletByName(ctx context.Context, name string) (*model.Configlet, error)
	GetConfiglets(ctx context.Context) ([]model.Configlet, error)
	GetConfigletsByDevice(ctx context.Context, mac string) ([]model.Configlet, error)
	// AddConfiglet returns the key of the new configlet.
	AddConfiglet(ctx context.Context, name, config string) (string, error)
	UpdateConfiglet(ctx context.Context, c model.Configlet) error
	DeleteConfiglet(ctx context.Context, c model.Configlet) error
	// ApplyConfiglets attaches configlets to a device, it returns the created
	// task IDs when createTask is set.
	ApplyConfiglets(ctx context.Context, appName string, d model.Device, configlets []model.Configlet, createTask bool) ([]string, error)
	// RemoveConfiglets detaches configlets from a device, returning the created task IDs.
	RemoveConfiglets(ctx context.Context, appName string, d model.Device, configlets []model.Configlet) ([]string, error)

	// GetContainerByName returns model.ErrNotFound when the container is missing.
	GetContainerByName(ctx context.Context, name string) (*model.Container, error)
	GetDevicesInContainer(ctx context.Context, name string) ([]model.Device, error)
	AddContainer(ctx context.Context, name string, parent model.Container) error
	DeleteContainer(ctx context.Context, c model.Container, parent model.Container) error
	// MoveDeviceToContainer returns the created task IDs.
	MoveDeviceToContainer(ctx context.Context, appName string, d model.Device, c model.Container) ([]string, error)

	GetTask(ctx context.Context, taskID string) (*model.Task, error)
	GetTaskStatus(ctx context.Context, taskID string) (model.TaskStatus, error)
	GetPendingTasks(ctx context.Context) ([]model.Task, error)
	ExecuteTask(ctx context.Context, taskID string) error

	CreateChangeControl(ctx context.Context, cc model.ChangeControl) (*model.ChangeControlResult, error)
}
