package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/netauto/cvpctl/internal/model"
)

const rootContainerKey = "root"

func (c *Client) GetContainerByName(ctx context.Context, name string) (*model.Container, error) {
	var res topologySearchJSON
	q := url.Values{
		"queryParam": {name},
		"startIndex": {"0"},
		"endIndex":   {"0"},
	}
	if err := c.call(ctx, http.MethodGet, "provisioning/searchTopology.do", q, nil, &res); err != nil {
		return nil, fmt.Errorf("could not search container %q: %w", name, err)
	}

	// Search is a substring match.
	for _, ct := range res.ContainerList {
		if ct.Name == name {
			return &model.Container{
				Key:  ct.Key,
				Name: ct.Name,
				Root: ct.Key == rootContainerKey,
			}, nil
		}
	}

	return nil, fmt.Errorf("container %q: %w", name, model.ErrNotFound)
}

func (c *Client) AddContainer(ctx context.Context, name string, parent model.Container) error {
	action := tempActionJSON{
		Info:        fmt.Sprintf("Container %s created", name),
		InfoPreview: fmt.Sprintf("Container %s created", name),
		Action:      "add",
		NodeType:    "container",
		NodeID:      "new_container",
		NodeName:    name,
		ToID:        parent.Key,
		ToIDType:    "container",
		ToName:      parent.Name,
		ChildTasks:  []string{},
	}

	if _, err := c.addTempAction(ctx, action, true); err != nil {
		return fmt.Errorf("could not add container %q: %w", name, err)
	}

	return nil
}

func (c *Client) DeleteContainer(ctx context.Context, ct model.Container, parent model.Container) error {
	action := tempActionJSON{
		Info:        fmt.Sprintf("Container %s deleted", ct.Name),
		InfoPreview: fmt.Sprintf("Container %s deleted", ct.Name),
		Action:      "delete",
		NodeType:    "container",
		NodeID:      ct.Key,
		NodeName:    ct.Name,
		FromID:      parent.Key,
		FromName:    parent.Name,
		ToIDType:    "container",
		ChildTasks:  []string{},
	}

	if _, err := c.addTempAction(ctx, action, true); err != nil {
		return fmt.Errorf("could not delete container %q: %w", ct.Name, err)
	}

	return nil
}

func (c *Client) MoveDeviceToContainer(ctx context.Context, appName string, d model.Device, ct model.Container) ([]string, error) {
	action := tempActionJSON{
		Info:        fmt.Sprintf("%s: Device %s moved to container %s", appName, d.FQDN, ct.Name),
		InfoPreview: fmt.Sprintf("Device %s moved to container %s", d.FQDN, ct.Name),
		Action:      "update",
		NodeType:    "netelement",
		NodeID:      d.SystemMacAddress,
		NodeName:    d.FQDN,
		ToID:        ct.Key,
		ToIDType:    "container",
		ToName:      ct.Name,
		FromID:      d.ParentContainerKey,
		ChildTasks:  []string{},
	}

	ids, err := c.addTempAction(ctx, action, true)
	if err != nil {
		return nil, fmt.Errorf("could not move %s to container %q: %w", d.Hostname, ct.Name, err)
	}

	return ids, nil
}

// addTempAction stages a topology change, when save is set the staged changes
// are saved and the created task IDs returned.
func (c *Client) addTempAction(ctx context.Context, action tempActionJSON, save bool) ([]string, error) {
	q := url.Values{
		"format":     {"topology"},
		"queryParam": {""},
		"nodeId":     {rootContainerKey},
	}
	body := tempActionsJSON{Data: []tempActionJSON{action}}
	if err := c.call(ctx, http.MethodPost, "provisioning/addTempAction.do", q, body, nil); err != nil {
		return nil, fmt.Errorf("could not stage topology change: %w", err)
	}

	if !save {
		return nil, nil
	}

	var resp saveTopologyRespJSON
	if err := c.call(ctx, http.MethodPost, "provisioning/v2/saveTopology.do", nil, []any{}, &resp); err != nil {
		return nil, fmt.Errorf("could not save topology: %w", err)
	}

	return resp.taskIDs(), nil
}
