// Package io loads automation definitions from files.
package io

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/netauto/cvpctl/internal/model"
)

// ActionsRepository loads action lists from JSON or YAML files, the format is
// selected by the file extension.
type ActionsRepository struct {
	fs fs.FS
}

// NewActionsRepository creates a new actions repository.
func NewActionsRepository(filesystem fs.FS) *ActionsRepository {
	return &ActionsRepository{fs: filesystem}
}

// ListActions loads the actions of a file keeping their order.
func (r *ActionsRepository) ListActions(ctx context.Context, path string) ([]model.Action, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading actions file: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var actions []Action
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &actions); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &actions); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	}

	res := make([]model.Action, 0, len(actions))
	for i, a := range actions {
		if err := a.validate(); err != nil {
			return nil, fmt.Errorf("invalid action %d (%s): %w", i, a.Name, err)
		}
		res = append(res, a.toModel())
	}

	return res, nil
}

// Action represents an entry of an actions file.
type Action struct {
	Name       string   `json:"name" yaml:"name"`
	Type       string   `json:"type" yaml:"type"`
	Action     string   `json:"action" yaml:"action"`
	Configlet  string   `json:"configlet" yaml:"configlet"`
	Container  string   `json:"container" yaml:"container"`
	Parent     string   `json:"parent" yaml:"parent"`
	Devices    []string `json:"devices" yaml:"devices"`
	Apply      *bool    `json:"apply" yaml:"apply"`
	Country    string   `json:"country" yaml:"country"`
	TimeZone   string   `json:"timezone" yaml:"timezone"`
	ScheduleAt string   `json:"schedule_at" yaml:"schedule_at"`
	SnapID     string   `json:"snapid" yaml:"snapid"`
	Mode       string   `json:"mode" yaml:"mode"`
}

// validate only checks the entry is well formed, unknown types and actions are
// handled by the action runner.
func (a Action) validate() error {
	if a.Mode != "" {
		if err := model.ChangeOrderMode(a.Mode).Validate(); err != nil {
			return err
		}
	}

	for _, d := range a.Devices {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("device hostnames can't be empty: %w", model.ErrNotValid)
		}
	}

	return nil
}

func (a Action) toModel() model.Action {
	return model.Action{
		Name:       a.Name,
		Type:       model.ActionType(a.Type),
		Action:     a.Action,
		Configlet:  a.Configlet,
		Container:  a.Container,
		Parent:     a.Parent,
		Devices:    a.Devices,
		Apply:      a.Apply,
		Country:    a.Country,
		TimeZone:   a.TimeZone,
		ScheduleAt: a.ScheduleAt,
		SnapshotID: a.SnapID,
		Mode:       model.ChangeOrderMode(a.Mode),
	}
}
