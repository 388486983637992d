package io

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netauto/cvpctl/internal/model"
)

func TestActionsRepositoryListActions(t *testing.T) {
	yes := true

	tests := map[string]struct {
		fs         fstest.MapFS
		path       string
		expActions []model.Action
		expErr     bool
	}{
		"A JSON actions file should load in order.": {
			fs: fstest.MapFS{
				"actions.json": &fstest.MapFile{Data: []byte(`[
	{
		"name": "Add NTP",
		"type": "configlet",
		"action": "add",
		"configlet": "configlets/ntp",
		"apply": true,
		"devices": ["leaf1", "leaf2"]
	},
	{
		"name": "Move leaves",
		"type": "container",
		"action": "attach-device",
		"container": "Leaf",
		"devices": ["leaf1"]
	},
	{
		"name": "Weekly change",
		"type": "change-control",
		"schedule_at": "2019-10-20 22:00",
		"timezone": "Europe/Paris",
		"country": "France",
		"snapid": "snap",
		"mode": "incremental"
	}
]`)},
			},
			path: "actions.json",
			expActions: []model.Action{
				{Name: "Add NTP", Type: model.ActionTypeConfiglet, Action: "add", Configlet: "configlets/ntp", Apply: &yes, Devices: []string{"leaf1", "leaf2"}},
				{Name: "Move leaves", Type: model.ActionTypeContainer, Action: "attach-device", Container: "Leaf", Devices: []string{"leaf1"}},
				{Name: "Weekly change", Type: model.ActionTypeChangeControl, ScheduleAt: "2019-10-20 22:00", TimeZone: "Europe/Paris", Country: "France", SnapshotID: "snap", Mode: model.ChangeOrderModeIncremental},
			},
		},

		"A YAML actions file should load.": {
			fs: fstest.MapFS{
				"actions.yaml": &fstest.MapFile{Data: []byte(`
- name: Create pod
  type: container
  action: create
  container: Pod1
  parent: Tenant
- name: No type
`)},
			},
			path: "actions.yaml",
			expActions: []model.Action{
				{Name: "Create pod", Type: model.ActionTypeContainer, Action: "create", Container: "Pod1", Parent: "Tenant"},
				{Name: "No type"},
			},
		},

		"An unknown change order mode should fail.": {
			fs: fstest.MapFS{
				"actions.json": &fstest.MapFile{Data: []byte(`[{"name": "cc", "type": "change-control", "mode": "random"}]`)},
			},
			path:   "actions.json",
			expErr: true,
		},

		"An empty device hostname should fail.": {
			fs: fstest.MapFS{
				"actions.json": &fstest.MapFile{Data: []byte(`[{"name": "a", "type": "configlet", "devices": [" "]}]`)},
			},
			path:   "actions.json",
			expErr: true,
		},

		"A JSON file that is not a list should fail.": {
			fs: fstest.MapFS{
				"actions.json": &fstest.MapFile{Data: []byte(`{"name": "a"}`)},
			},
			path:   "actions.json",
			expErr: true,
		},

		"A missing file should fail.": {
			fs:     fstest.MapFS{},
			path:   "actions.json",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			repo := NewActionsRepository(test.fs)
			got, err := repo.ListActions(context.TODO(), test.path)

			if test.expErr {
				assert.Error(err)
				return
			}
			require.NoError(err)
			assert.Equal(test.expActions, got)
		})
	}
}
