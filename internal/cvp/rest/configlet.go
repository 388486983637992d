package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/netauto/cvpctl/internal/model"
)

func (c *Client) GetConfigletByName(ctx context.Context, name string) (*model.Configlet, error) {
	var cl configletJSON
	q := url.Values{"name": {name}}
	if err := c.call(ctx, http.MethodGet, "configlet/getConfigletByName.do", q, nil, &cl); err != nil {
		return nil, fmt.Errorf("could not get configlet %q: %w", name, err)
	}

	m := cl.toModel()
	return &m, nil
}

func (c *Client) GetConfiglets(ctx context.Context) ([]model.Configlet, error) {
	var cls configletListJSON
	q := url.Values{"startIndex": {"0"}, "endIndex": {"0"}}
	if err := c.call(ctx, http.MethodGet, "configlet/getConfiglets.do", q, nil, &cls); err != nil {
		return nil, fmt.Errorf("could not get configlets: %w", err)
	}

	res := make([]model.Configlet, 0, len(cls.Data))
	for _, cl := range cls.Data {
		res = append(res, cl.toModel())
	}

	return res, nil
}

func (c *Client) GetConfigletsByDevice(ctx context.Context, mac string) ([]model.Configlet, error) {
	var cls deviceConfigletsJSON
	q := url.Values{
		"netElementId": {mac},
		"queryParam":   {""},
		"startIndex":   {"0"},
		"endIndex":     {"0"},
	}
	if err := c.call(ctx, http.MethodGet, "provisioning/getConfigletsByNetElementId.do", q, nil, &cls); err != nil {
		return nil, fmt.Errorf("could not get configlets of device %s: %w", mac, err)
	}

	res := make([]model.Configlet, 0, len(cls.ConfigletList))
	for _, cl := range cls.ConfigletList {
		res = append(res, cl.toModel())
	}

	return res, nil
}

func (c *Client) AddConfiglet(ctx context.Context, name, config string) (string, error) {
	var resp addConfigletRespJSON
	body := addConfigletJSON{Name: name, Config: config}
	if err := c.call(ctx, http.MethodPost, "configlet/addConfiglet.do", nil, body, &resp); err != nil {
		return "", fmt.Errorf("could not add configlet %q: %w", name, err)
	}

	return resp.Data.Key, nil
}

func (c *Client) UpdateConfiglet(ctx context.Context, cl model.Configlet) error {
	body := updateConfigletJSON{Key: cl.Key, Name: cl.Name, Config: cl.Config}
	if err := c.call(ctx, http.MethodPost, "configlet/updateConfiglet.do", nil, body, nil); err != nil {
		return fmt.Errorf("could not update configlet %q: %w", cl.Name, err)
	}

	return nil
}

func (c *Client) DeleteConfiglet(ctx context.Context, cl model.Configlet) error {
	body := []configletRefJSON{{Key: cl.Key, Name: cl.Name}}
	if err := c.call(ctx, http.MethodPost, "configlet/deleteConfiglet.do", nil, body, nil); err != nil {
		return fmt.Errorf("could not delete configlet %q: %w", cl.Name, err)
	}

	return nil
}

func (c *Client) ApplyConfiglets(ctx context.Context, appName string, d model.Device, configlets []model.Configlet, createTask bool) ([]string, error) {
	current, err := c.GetConfigletsByDevice(ctx, d.SystemMacAddress)
	if err != nil {
		return nil, err
	}

	keys, names := configletRefs(current)
	seen := map[string]bool{}
	for _, k := range keys {
		seen[k] = true
	}
	for _, cl := range configlets {
		if seen[cl.Key] {
			continue
		}
		seen[cl.Key] = true
		keys = append(keys, cl.Key)
		names = append(names, cl.Name)
	}

	action := tempActionJSON{
		Info:                     fmt.Sprintf("%s: Configlet Assign: to Device %s", appName, d.FQDN),
		InfoPreview:              "<b>Configlet Assign:</b> to Device " + d.FQDN,
		Action:                   "associate",
		NodeType:                 "configlet",
		ConfigletList:            keys,
		ConfigletNamesList:       names,
		IgnoreConfigletList:      []string{},
		IgnoreConfigletNamesList: []string{},
		ToID:                     d.SystemMacAddress,
		ToIDType:                 "netelement",
		ToName:                   d.FQDN,
		NodeIPAddress:            d.IPAddress,
		NodeTargetIPAddress:      d.IPAddress,
		ChildTasks:               []string{},
	}

	ids, err := c.addTempAction(ctx, action, createTask)
	if err != nil {
		return nil, fmt.Errorf("could not apply configlets to %s: %w", d.Hostname, err)
	}

	return ids, nil
}

func (c *Client) RemoveConfiglets(ctx context.Context, appName string, d model.Device, configlets []model.Configlet) ([]string, error) {
	current, err := c.GetConfigletsByDevice(ctx, d.SystemMacAddress)
	if err != nil {
		return nil, err
	}

	remove := map[string]bool{}
	for _, cl := range configlets {
		remove[cl.Key] = true
	}

	var keep, ignore []model.Configlet
	for _, cl := range current {
		if remove[cl.Key] {
			ignore = append(ignore, cl)
			continue
		}
		keep = append(keep, cl)
	}
	keepKeys, keepNames := configletRefs(keep)
	ignoreKeys, ignoreNames := configletRefs(ignore)

	action := tempActionJSON{
		Info:                     fmt.Sprintf("%s: Configlet Remove: from Device %s", appName, d.FQDN),
		InfoPreview:              "<b>Configlet Remove:</b> from Device " + d.FQDN,
		Action:                   "associate",
		NodeType:                 "configlet",
		ConfigletList:            keepKeys,
		ConfigletNamesList:       keepNames,
		IgnoreConfigletList:      ignoreKeys,
		IgnoreConfigletNamesList: ignoreNames,
		ToID:                     d.SystemMacAddress,
		ToIDType:                 "netelement",
		ToName:                   d.FQDN,
		NodeIPAddress:            d.IPAddress,
		NodeTargetIPAddress:      d.IPAddress,
		ChildTasks:               []string{},
	}

	ids, err := c.addTempAction(ctx, action, true)
	if err != nil {
		return nil, fmt.Errorf("could not remove configlets from %s: %w", d.Hostname, err)
	}

	return ids, nil
}

func configletRefs(cls []model.Configlet) (keys, names []string) {
	keys = make([]string, 0, len(cls))
	names = make([]string, 0, len(cls))
	for _, cl := range cls {
		keys = append(keys, cl.Key)
		names = append(names, cl.Name)
	}
	return keys, names
}
