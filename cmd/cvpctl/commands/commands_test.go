package commands

import (
	"os"
	"testing"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netauto/cvpctl/internal/config"
	"github.com/netauto/cvpctl/internal/model"
)

func TestCheckRuns(t *testing.T) {
	completed := model.TaskRun{TaskID: "1", State: model.TaskWaitStateCompleted}
	timedOut := model.TaskRun{TaskID: "2", State: model.TaskWaitStateTimedOut}

	failed := model.TaskRun{TaskID: "3", Status: model.TaskStatusFailed, State: model.TaskWaitStateTimedOut}

	tests := map[string]struct {
		runs      []model.TaskRun
		expErr    error
		expErrMsg string
	}{
		"No runs should not fail.": {},

		"Completed runs should not fail.": {
			runs: []model.TaskRun{completed, completed},
		},

		"A timed out run should fail with timeout.": {
			runs:      []model.TaskRun{completed, timedOut},
			expErr:    model.ErrTaskTimeout,
			expErrMsg: "1 of 2 tasks not completed: task did not complete in time",
		},

		"A failed run should be reported as failed.": {
			runs:      []model.TaskRun{timedOut, failed},
			expErr:    model.ErrTaskTimeout,
			expErrMsg: "2 of 2 tasks not completed (1 failed on server): task did not complete in time",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := checkRuns(test.runs)

			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				assert.EqualError(t, err, test.expErrMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	chdir(t, t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := map[string]struct {
		path    string
		expDir  string
		expName string
		expErr  bool
	}{
		"A relative file should be resolved from the working directory.": {
			path:    "actions.json",
			expDir:  wd,
			expName: "actions.json",
		},

		"An absolute file should be split.": {
			path:    "/tmp/cvp/actions.yaml",
			expDir:  "/tmp/cvp",
			expName: "actions.yaml",
		},

		"The root should fail.": {
			path:   "/",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			gotDir, gotName, err := splitPath(test.path)

			if test.expErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expDir, gotDir)
			assert.Equal(t, test.expName, gotName)
		})
	}
}

func TestRootCommandLoadConfig(t *testing.T) {
	tests := map[string]struct {
		args      []string
		env       map[string]string
		expConfig func(c *config.Config)
	}{
		"Without flags the environment should be used.": {
			env: map[string]string{"CVP_HOST": "10.0.0.1", "CVP_USER": "cvpadmin"},
			expConfig: func(c *config.Config) {
				c.Host = "10.0.0.1"
				c.Username = "cvpadmin"
			},
		},

		"Flags should override the environment.": {
			args: []string{"--cvp", "10.0.0.2", "-u", "admin", "-p", "secret", "--port", "8443", "--proto", "http", "--cert-validation"},
			env:  map[string]string{"CVP_HOST": "10.0.0.1", "CVP_PORT": "443"},
			expConfig: func(c *config.Config) {
				c.Host = "10.0.0.2"
				c.Username = "admin"
				c.Password = "secret"
				c.Port = 8443
				c.Protocol = "http"
				c.CertValidation = true
			},
		},

		"Disabling the cert validation explicitly should override the environment.": {
			args: []string{"--no-cert-validation"},
			env:  map[string]string{"CERT_VALIDATION": "true"},
			expConfig: func(c *config.Config) {
				c.CertValidation = false
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv("HOME", t.TempDir())
			for _, k := range []string{"CVP_HOST", "CVP_PORT", "CVP_PROTO", "CVP_USER", "CVP_PASS", "CERT_VALIDATION", "CVP_LOG_LEVEL", "LOG_LEVEL"} {
				t.Setenv(k, "")
			}
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			app := kingpin.New("test", "")
			rootCmd := NewRootCommand(app)
			_, err := app.Parse(test.args)
			require.NoError(t, err)

			err = rootCmd.LoadConfig()
			require.NoError(t, err)

			exp := config.Config{
				Host:        "127.0.0.2",
				Port:        443,
				Protocol:    "https",
				Username:    "username",
				Password:    "password",
				TimeZone:    "France",
				Country:     "France",
				BackupDir:   "configlets_backup",
				ActionsFile: "actions.json",
				LogLevel:    "info",
			}
			test.expConfig(&exp)
			assert.Equal(t, exp, rootCmd.Config)
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
