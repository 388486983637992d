package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/netauto/cvpctl/internal/cvp/cvpmock"
	"github.com/netauto/cvpctl/internal/inventory"
	"github.com/netauto/cvpctl/internal/model"
)

func TestInventory(t *testing.T) {
	devs := []model.Device{
		{Hostname: "leaf1", SystemMacAddress: "00:00:00:00:00:01"},
		{Hostname: "leaf2", SystemMacAddress: "00:00:00:00:00:02"},
		{Hostname: "leaf1", SystemMacAddress: "00:00:00:00:00:03"},
	}

	tests := map[string]struct {
		mock      func(m *cvpmock.MockClient)
		hostname  string
		expDevice *model.Device
		expLenAll int
		expErr    error
		expLoad   bool
	}{
		"An existing device should be returned.": {
			mock: func(m *cvpmock.MockClient) {
				m.On("GetInventory", mock.Anything).Once().Return(devs, nil)
			},
			hostname:  "leaf2",
			expDevice: &model.Device{Hostname: "leaf2", SystemMacAddress: "00:00:00:00:00:02"},
			expLenAll: 3,
		},

		"A repeated hostname should return the first device.": {
			mock: func(m *cvpmock.MockClient) {
				m.On("GetInventory", mock.Anything).Once().Return(devs, nil)
			},
			hostname:  "leaf1",
			expDevice: &model.Device{Hostname: "leaf1", SystemMacAddress: "00:00:00:00:00:01"},
			expLenAll: 3,
		},

		"A missing device should return not found.": {
			mock: func(m *cvpmock.MockClient) {
				m.On("GetInventory", mock.Anything).Once().Return(devs, nil)
			},
			hostname:  "spine1",
			expErr:    model.ErrNotFound,
			expLenAll: 3,
		},

		"An error loading the inventory should fail.": {
			mock: func(m *cvpmock.MockClient) {
				m.On("GetInventory", mock.Anything).Once().Return(nil, errors.New("something"))
			},
			expLoad: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			m := &cvpmock.MockClient{}
			test.mock(m)

			inv, err := inventory.Load(context.TODO(), m)
			m.AssertExpectations(t)
			if test.expLoad {
				assert.Error(err)
				return
			}
			require.NoError(err)

			assert.Len(inv.Devices(), test.expLenAll)
			d, err := inv.Device(test.hostname)
			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
				return
			}
			require.NoError(err)
			assert.Equal(test.expDevice, d)
		})
	}
}
