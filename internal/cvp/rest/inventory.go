package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/netauto/cvpctl/internal/model"
)

func (c *Client) GetInventory(ctx context.Context) ([]model.Device, error) {
	var devs []deviceJSON
	q := url.Values{"provisioned": {"true"}}
	if err := c.call(ctx, http.MethodGet, "inventory/devices", q, nil, &devs); err != nil {
		return nil, fmt.Errorf("could not get inventory: %w", err)
	}

	res := make([]model.Device, 0, len(devs))
	for _, d := range devs {
		res = append(res, d.toModel())
	}

	return res, nil
}

func (c *Client) GetDevicesInContainer(ctx context.Context, name string) ([]model.Device, error) {
	devs, err := c.GetInventory(ctx)
	if err != nil {
		return nil, err
	}

	res := []model.Device{}
	for _, d := range devs {
		if d.ContainerName == name {
			res = append(res, d)
		}
	}

	return res, nil
}
