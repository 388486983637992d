// Package inventory gives read only access to the devices registered on the server.
package inventory

import (
	"context"
	"fmt"

	"github.com/netauto/cvpctl/internal/model"
)

// Getter returns the server device inventory.
type Getter interface {
	GetInventory(ctx context.Context) ([]model.Device, error)
}

// Inventory is a snapshot of the server inventory, loaded once.
type Inventory struct {
	devices []model.Device
	byHost  map[string]int
}

// Load gets the inventory from the server.
func Load(ctx context.Context, g Getter) (*Inventory, error) {
	devs, err := g.GetInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load inventory: %w", err)
	}

	return New(devs), nil
}

// New returns an inventory from a list of devices. If hostnames are repeated
// the first device wins.
func New(devs []model.Device) *Inventory {
	inv := &Inventory{
		devices: devs,
		byHost:  make(map[string]int, len(devs)),
	}
	for i, d := range devs {
		if _, ok := inv.byHost[d.Hostname]; !ok {
			inv.byHost[d.Hostname] = i
		}
	}

	return inv
}

// Device returns the device with the hostname.
func (i *Inventory) Device(hostname string) (*model.Device, error) {
	idx, ok := i.byHost[hostname]
	if !ok {
		return nil, fmt.Errorf("device %q: %w", hostname, model.ErrNotFound)
	}

	d := i.devices[idx]
	return &d, nil
}

// Devices returns all the devices.
func (i *Inventory) Devices() []model.Device {
	res := make([]model.Device, len(i.devices))
	copy(res, i.devices)
	return res
}
