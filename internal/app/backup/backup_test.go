package backup_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/netauto/cvpctl/internal/app/backup"
	"github.com/netauto/cvpctl/internal/cvp/cvpmock"
	"github.com/netauto/cvpctl/internal/model"
)

func TestFileName(t *testing.T) {
	tests := map[string]struct {
		name string
		exp  string
	}{
		"A simple name should be prefixed.": {
			name: "ntp",
			exp:  "configlet-ntp.json",
		},

		"Spaces should be replaced by dashes.": {
			name: "base leaf config",
			exp:  "configlet-base-leaf-config.json",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, backup.FileName(test.name))
		})
	}
}

func TestServiceRun(t *testing.T) {
	tests := map[string]struct {
		mock     func(m *cvpmock.MockClient)
		subdir   string
		expFiles map[string]string
		expErr   bool
	}{
		"Configlets should be saved with indented sorted keys.": {
			mock: func(m *cvpmock.MockClient) {
				m.On("GetConfiglets", mock.Anything).Once().Return([]model.Configlet{
					{Name: "base config", Raw: map[string]any{"name": "base config", "key": "c1", "config": "hostname x\n"}},
					{Name: "ntp", Key: "c2", Config: "ntp server 1.1.1.1", Type: "Static"},
				}, nil)
			},
			subdir: "backups/today",
			expFiles: map[string]string{
				"configlet-base-config.json": "{\n    \"config\": \"hostname x\\n\",\n    \"key\": \"c1\",\n    \"name\": \"base config\"\n}",
				"configlet-ntp.json":         "{\n    \"config\": \"ntp server 1.1.1.1\",\n    \"key\": \"c2\",\n    \"name\": \"ntp\",\n    \"type\": \"Static\"\n}",
			},
		},

		"Without configlets the directory should still be created.": {
			mock: func(m *cvpmock.MockClient) {
				m.On("GetConfiglets", mock.Anything).Once().Return([]model.Configlet{}, nil)
			},
			subdir:   "empty",
			expFiles: map[string]string{},
		},

		"A server error should fail.": {
			mock: func(m *cvpmock.MockClient) {
				m.On("GetConfiglets", mock.Anything).Once().Return(nil, errors.New("whatever"))
			},
			subdir: "failed",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			m := &cvpmock.MockClient{}
			test.mock(m)

			svc, err := backup.NewService(backup.ServiceConfig{Client: m})
			require.NoError(err)

			dir := filepath.Join(t.TempDir(), test.subdir)
			files, err := svc.Run(context.TODO(), backup.Request{Directory: dir})

			if test.expErr {
				assert.Error(err)
				return
			}
			require.NoError(err)
			assert.Len(files, len(test.expFiles))

			entries, err := os.ReadDir(dir)
			require.NoError(err)
			assert.Len(entries, len(test.expFiles))

			for _, f := range files {
				exp, ok := test.expFiles[filepath.Base(f.Path)]
				require.True(ok, "unexpected file %s", f.Path)

				got, err := os.ReadFile(f.Path)
				require.NoError(err)
				assert.Equal(exp, string(got))
				assert.Equal(int64(len(exp)), f.SizeBytes)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestServiceRunMissingDirectory(t *testing.T) {
	svc, err := backup.NewService(backup.ServiceConfig{Client: &cvpmock.MockClient{}})
	require.NoError(t, err)

	_, err = svc.Run(context.TODO(), backup.Request{})
	assert.ErrorIs(t, err, model.ErrNotValid)
}
