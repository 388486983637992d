package history_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/netauto/cvpctl/internal/app/history"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/storage"
	"github.com/netauto/cvpctl/internal/storage/storagemock"
)

func TestNewService(t *testing.T) {
	_, err := history.NewService(history.ServiceConfig{})
	assert.Error(t, err)
}

func TestServiceRun(t *testing.T) {
	runs := []model.TaskRun{{ID: "01B", TaskID: "12"}, {ID: "01A", TaskID: "12"}}

	tests := map[string]struct {
		mock    func(m *storagemock.MockTaskRunRepository)
		req     history.Request
		expRuns []model.TaskRun
		expErr  bool
	}{
		"no limit should use the default one": {
			mock: func(m *storagemock.MockTaskRunRepository) {
				m.On("ListTaskRuns", mock.Anything, storage.TaskRunFilter{Limit: history.DefaultLimit}).Once().Return(runs, nil)
			},
			req:     history.Request{},
			expRuns: runs,
		},
		"negative limit should list everything of a task": {
			mock: func(m *storagemock.MockTaskRunRepository) {
				m.On("ListTaskRuns", mock.Anything, storage.TaskRunFilter{TaskID: "12"}).Once().Return(runs, nil)
			},
			req:     history.Request{TaskID: "12", Limit: -1},
			expRuns: runs,
		},
		"repository error should fail": {
			mock: func(m *storagemock.MockTaskRunRepository) {
				m.On("ListTaskRuns", mock.Anything, mock.Anything).Once().Return(nil, fmt.Errorf("something"))
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			m := &storagemock.MockTaskRunRepository{}
			test.mock(m)

			svc, err := history.NewService(history.ServiceConfig{Repository: m})
			require.NoError(err)

			got, err := svc.Run(context.TODO(), test.req)

			if test.expErr {
				require.Error(err)
			} else {
				require.NoError(err)
				require.Equal(test.expRuns, got)
			}
			m.AssertExpectations(t)
		})
	}
}
