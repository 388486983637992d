package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netauto/cvpctl/internal/model"
)

func TestTaskStatusIsCompleted(t *testing.T) {
	tests := map[string]struct {
		status model.TaskStatus
		exp    bool
	}{
		"Upper case completed should be completed.":    {status: "COMPLETED", exp: true},
		"Lower case completed should be completed.":    {status: "completed", exp: true},
		"Mixed case completed should be completed.":    {status: "Completed", exp: true},
		"Pending should not be completed.":             {status: model.TaskStatusPending, exp: false},
		"Unknown should not be completed.":             {status: model.TaskStatusUnknown, exp: false},
		"Empty should not be completed.":               {status: "", exp: false},
		"Prefix of completed should not be completed.": {status: "COMPLETE", exp: false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, test.status.IsCompleted())
		})
	}
}

func TestTaskStatusIsFailed(t *testing.T) {
	assert.True(t, model.TaskStatus("failed").IsFailed())
	assert.True(t, model.TaskStatusCancelled.IsFailed())
	assert.False(t, model.TaskStatusCompleted.IsFailed())
}

func TestDeviceDeployable(t *testing.T) {
	tests := map[string]struct {
		device model.Device
		exp    bool
	}{
		"Device with hostname and mac should be deployable.": {
			device: model.Device{Hostname: "leaf1", SystemMacAddress: "50:01:00:01:00:01"},
			exp:    true,
		},
		"Device without mac should not be deployable.": {
			device: model.Device{Hostname: "leaf1"},
			exp:    false,
		},
		"Device without hostname should not be deployable.": {
			device: model.Device{SystemMacAddress: "50:01:00:01:00:01"},
			exp:    false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, test.device.Deployable())
		})
	}
}

func TestChangeOrderModeValidate(t *testing.T) {
	assert.NoError(t, model.ChangeOrderModeLinear.Validate())
	assert.NoError(t, model.ChangeOrderModeIncremental.Validate())
	assert.ErrorIs(t, model.ChangeOrderMode("random").Validate(), model.ErrNotValid)
}

func TestActionShouldApply(t *testing.T) {
	yes, no := true, false
	assert.True(t, model.Action{Apply: &yes}.ShouldApply())
	assert.False(t, model.Action{Apply: &no}.ShouldApply())
	assert.False(t, model.Action{}.ShouldApply())
}
