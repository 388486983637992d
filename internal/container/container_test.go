package container_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/netauto/cvpctl/internal/container"
	"github.com/netauto/cvpctl/internal/cvp/cvpmock"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/task"
)

var (
	leaf1 = model.Device{Hostname: "leaf1", SystemMacAddress: "00:00:00:00:00:01", ContainerName: "Leaf"}
	leaf2 = model.Device{Hostname: "leaf2", SystemMacAddress: "00:00:00:00:00:02", ContainerName: "Undefined"}
	leaf3 = model.Device{Hostname: "leaf3", SystemMacAddress: "00:00:00:00:00:03", ContainerName: "Undefined"}

	tenant = model.Container{Key: "root", Name: "Tenant", Root: true}
	leaf   = model.Container{Key: "container_1", Name: "Leaf"}
)

type fakeRunner struct {
	err  error
	reqs []task.RunRequest
}

func (f *fakeRunner) Run(_ context.Context, req task.RunRequest) (*model.TaskRun, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &model.TaskRun{TaskID: req.TaskID, Hostname: req.Hostname, Status: model.TaskStatusCompleted, State: model.TaskWaitStateCompleted}, nil
}

func mockOpenLeaf(m *cvpmock.MockClient) {
	m.On("GetInventory", mock.Anything).Once().Return([]model.Device{leaf1, leaf2, leaf3}, nil)
	m.On("GetContainerByName", mock.Anything, "Leaf").Once().Return(&leaf, nil)
	m.On("GetDevicesInContainer", mock.Anything, "Leaf").Once().Return([]model.Device{leaf1}, nil)
}

func mockOpenMissing(m *cvpmock.MockClient) {
	m.On("GetInventory", mock.Anything).Once().Return([]model.Device{leaf1, leaf2, leaf3}, nil)
	m.On("GetContainerByName", mock.Anything, "Leaf").Once().Return(nil, model.ErrNotFound)
}

func open(t *testing.T, m *cvpmock.MockClient, r *fakeRunner) *container.Manager {
	t.Helper()

	svc, err := container.NewService(container.ServiceConfig{Client: m, TaskRunner: r})
	require.NoError(t, err)
	mgr, err := svc.Open(context.TODO(), "Leaf")
	require.NoError(t, err)
	return mgr
}

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		cfg    container.ServiceConfig
		expErr bool
	}{
		"A valid configuration should create the service.": {
			cfg: container.ServiceConfig{Client: &cvpmock.MockClient{}, TaskRunner: &fakeRunner{}},
		},

		"A missing client should fail.": {
			cfg:    container.ServiceConfig{TaskRunner: &fakeRunner{}},
			expErr: true,
		},

		"A missing task runner should fail.": {
			cfg:    container.ServiceConfig{Client: &cvpmock.MockClient{}},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			svc, err := container.NewService(test.cfg)

			if test.expErr {
				assert.Error(err)
				assert.Nil(svc)
			} else {
				assert.NoError(err)
				assert.NotNil(svc)
			}
		})
	}
}

func TestManagerCreate(t *testing.T) {
	tests := map[string]struct {
		mock   func(m *cvpmock.MockClient)
		parent string
		expErr error
	}{
		"A missing container should be created under the root container by default.": {
			mock: func(m *cvpmock.MockClient) {
				mockOpenMissing(m)
				m.On("GetContainerByName", mock.Anything, "Tenant").Once().Return(&tenant, nil)
				m.On("AddContainer", mock.Anything, "Leaf", tenant).Once().Return(nil)
				m.On("GetContainerByName", mock.Anything, "Leaf").Once().Return(&leaf, nil)
			},
		},

		"An existing container should not be created again.": {
			mock:   mockOpenLeaf,
			expErr: model.ErrAlreadyExists,
		},

		"A missing parent container should fail.": {
			mock: func(m *cvpmock.MockClient) {
				mockOpenMissing(m)
				m.On("GetContainerByName", mock.Anything, "Pod1").Once().Return(nil, model.ErrNotFound)
			},
			parent: "Pod1",
			expErr: model.ErrNotFound,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			m := &cvpmock.MockClient{}
			test.mock(m)
			mgr := open(t, m, &fakeRunner{})

			err := mgr.Create(context.TODO(), test.parent)

			m.AssertExpectations(t)
			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
				return
			}
			assert.NoError(err)
			assert.Equal(&leaf, mgr.Container())
		})
	}
}

func TestManagerDestroy(t *testing.T) {
	tests := map[string]struct {
		mock   func(m *cvpmock.MockClient)
		expErr error
	}{
		"An empty container should be removed.": {
			mock: func(m *cvpmock.MockClient) {
				m.On("GetInventory", mock.Anything).Once().Return([]model.Device{leaf1}, nil)
				m.On("GetContainerByName", mock.Anything, "Leaf").Once().Return(&leaf, nil)
				m.On("GetDevicesInContainer", mock.Anything, "Leaf").Once().Return([]model.Device{}, nil)
				m.On("GetContainerByName", mock.Anything, "Tenant").Once().Return(&tenant, nil)
				m.On("DeleteContainer", mock.Anything, leaf, tenant).Once().Return(nil)
			},
		},

		"A container with devices should not be removed.": {
			mock:   mockOpenLeaf,
			expErr: model.ErrNotValid,
		},

		"A missing container should fail.": {
			mock:   mockOpenMissing,
			expErr: model.ErrNotFound,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			m := &cvpmock.MockClient{}
			test.mock(m)
			mgr := open(t, m, &fakeRunner{})

			err := mgr.Destroy(context.TODO(), "")

			m.AssertExpectations(t)
			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
				return
			}
			assert.NoError(err)
			assert.False(mgr.OnServer())
		})
	}
}

func TestManagerAttachDevices(t *testing.T) {
	tests := map[string]struct {
		mock       func(m *cvpmock.MockClient)
		runner     *fakeRunner
		hostnames  []string
		deploy     bool
		expRuns    []model.TaskRun
		expPending []string
		expErr     bool
	}{
		"Devices should be moved and their tasks kept pending without deploy.": {
			mock: func(m *cvpmock.MockClient) {
				mockOpenLeaf(m)
				m.On("MoveDeviceToContainer", mock.Anything, mock.Anything, leaf2, leaf).Once().Return([]string{"31"}, nil)
				m.On("MoveDeviceToContainer", mock.Anything, mock.Anything, leaf3, leaf).Once().Return([]string{"32"}, nil)
			},
			runner:     &fakeRunner{},
			hostnames:  []string{"leaf1", "leaf2", "missing", "leaf3"},
			expPending: []string{"31", "32"},
		},

		"Devices should be moved and their tasks run with deploy.": {
			mock: func(m *cvpmock.MockClient) {
				mockOpenLeaf(m)
				m.On("MoveDeviceToContainer", mock.Anything, mock.Anything, leaf2, leaf).Once().Return([]string{"31"}, nil)
			},
			runner:    &fakeRunner{},
			hostnames: []string{"leaf2"},
			deploy:    true,
			expRuns: []model.TaskRun{
				{TaskID: "31", Hostname: "leaf2", Status: model.TaskStatusCompleted, State: model.TaskWaitStateCompleted},
			},
			expPending: []string{},
		},

		"A task run error should fail.": {
			mock: func(m *cvpmock.MockClient) {
				mockOpenLeaf(m)
				m.On("MoveDeviceToContainer", mock.Anything, mock.Anything, leaf2, leaf).Once().Return([]string{"31"}, nil)
			},
			runner:     &fakeRunner{err: errors.New("something")},
			hostnames:  []string{"leaf2"},
			deploy:     true,
			expPending: []string{"31"},
			expErr:     true,
		},

		"A move error should fail.": {
			mock: func(m *cvpmock.MockClient) {
				mockOpenLeaf(m)
				m.On("MoveDeviceToContainer", mock.Anything, mock.Anything, leaf2, leaf).Once().Return(nil, errors.New("something"))
			},
			runner:     &fakeRunner{},
			hostnames:  []string{"leaf2"},
			expPending: []string{},
			expErr:     true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			m := &cvpmock.MockClient{}
			test.mock(m)
			mgr := open(t, m, test.runner)

			runs, err := mgr.AttachDevices(context.TODO(), test.hostnames, test.deploy, 10)

			m.AssertExpectations(t)
			assert.Equal(test.expPending, mgr.PendingTasks())
			if test.expErr {
				assert.Error(err)
				return
			}
			require.NoError(err)
			assert.Equal(test.expRuns, runs)
		})
	}
}

func TestManagerIsDeviceAttached(t *testing.T) {
	assert := assert.New(t)

	m := &cvpmock.MockClient{}
	mockOpenLeaf(m)
	mgr := open(t, m, &fakeRunner{})

	assert.True(mgr.IsDeviceAttached("leaf1"))
	assert.False(mgr.IsDeviceAttached("leaf2"))
}
