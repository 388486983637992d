package cvpctl_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intcvpctl "github.com/netauto/cvpctl/test/integration/cvpctl"
)

// newTestDB returns a fresh history database path for test isolation.
func newTestDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "history.db")
}

// taskItem matches the JSON output of `cvpctl task list --format json`.
type taskItem struct {
	ID       string `json:"id"`
	Hostname string `json:"hostname"`
	Status   string `json:"status"`
}

// backupItem matches the JSON output of `cvpctl backup --format json`.
type backupItem struct {
	Configlet string `json:"configlet"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}

func TestTaskList(t *testing.T) {
	config := intcvpctl.NewConfig(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	stdout, stderr, err := intcvpctl.RunTaskList(ctx, config, newTestDB(t))
	require.NoError(t, err, "stderr: %s", stderr)

	var tasks []taskItem
	require.NoError(t, json.Unmarshal(stdout, &tasks))
	for _, tk := range tasks {
		assert.NotEmpty(t, tk.ID)
		assert.Equal(t, "pending", strings.ToLower(tk.Status))
	}
}

func TestHistoryEmpty(t *testing.T) {
	config := intcvpctl.NewConfig(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	stdout, stderr, err := intcvpctl.RunHistory(ctx, config, newTestDB(t))
	require.NoError(t, err, "stderr: %s", stderr)
	assert.JSONEq(t, "[]", string(stdout))
}

func TestBackup(t *testing.T) {
	config := intcvpctl.NewConfig(t)
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	dir := filepath.Join(t.TempDir(), "backup")
	stdout, stderr, err := intcvpctl.RunBackup(ctx, config, newTestDB(t), dir)
	require.NoError(t, err, "stderr: %s", stderr)

	var files []backupItem
	require.NoError(t, json.Unmarshal(stdout, &files))
	for _, f := range files {
		assert.True(t, strings.HasPrefix(filepath.Base(f.Path), "configlet-"))

		data, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Equal(t, f.SizeBytes, int64(len(data)))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, f.Configlet, doc["name"])
	}
}
