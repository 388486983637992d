package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/storage"
	"github.com/netauto/cvpctl/internal/storage/sqlite"
)

func taskRunFixture(id, taskID string, startedAt time.Time) model.TaskRun {
	return model.TaskRun{
		ID:         id,
		TaskID:     taskID,
		Hostname:   "leaf1",
		Status:     model.TaskStatusCompleted,
		State:      model.TaskWaitStateCompleted,
		Attempts:   3,
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(3 * time.Second),
	}
}

func newRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{
		DBPath: filepath.Join(t.TempDir(), "nested", "history.db"),
		Logger: log.Noop,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestNewRepositoryMissingPath(t *testing.T) {
	_, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{})
	assert.Error(t, err)
}

func TestRepositoryCreateTaskRun(t *testing.T) {
	base := time.Date(2019, 10, 16, 10, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		runs   []model.TaskRun
		expErr error
	}{
		"A new task run should be stored.": {
			runs: []model.TaskRun{taskRunFixture("01A", "12", base)},
		},

		"A repeated task run ID should fail.": {
			runs:   []model.TaskRun{taskRunFixture("01A", "12", base), taskRunFixture("01A", "13", base)},
			expErr: model.ErrAlreadyExists,
		},

		"A task run without task ID should fail.": {
			runs:   []model.TaskRun{taskRunFixture("01A", "", base)},
			expErr: model.ErrNotValid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			repo := newRepo(t)

			var err error
			for _, r := range test.runs {
				if err = repo.CreateTaskRun(context.TODO(), r); err != nil {
					break
				}
			}

			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func TestRepositoryListTaskRuns(t *testing.T) {
	base := time.Date(2019, 10, 16, 10, 0, 0, 0, time.UTC)
	r1 := taskRunFixture("01A", "12", base)
	r2 := taskRunFixture("01B", "13", base.Add(time.Minute))
	r3 := taskRunFixture("01C", "12", base.Add(2*time.Minute))
	r3.State = model.TaskWaitStateTimedOut
	r3.Status = model.TaskStatusPending

	tests := map[string]struct {
		filter  storage.TaskRunFilter
		expRuns []model.TaskRun
	}{
		"Without filter all the runs should be returned newest first.": {
			filter:  storage.TaskRunFilter{},
			expRuns: []model.TaskRun{r3, r2, r1},
		},

		"Filtering by task should return only that task runs.": {
			filter:  storage.TaskRunFilter{TaskID: "12"},
			expRuns: []model.TaskRun{r3, r1},
		},

		"A limit should cap the number of runs.": {
			filter:  storage.TaskRunFilter{Limit: 1},
			expRuns: []model.TaskRun{r3},
		},

		"A missing task should return no runs.": {
			filter:  storage.TaskRunFilter{TaskID: "99"},
			expRuns: []model.TaskRun{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			repo := newRepo(t)
			for _, r := range []model.TaskRun{r1, r2, r3} {
				require.NoError(repo.CreateTaskRun(context.TODO(), r))
			}

			got, err := repo.ListTaskRuns(context.TODO(), test.filter)
			require.NoError(err)

			assert.Equal(test.expRuns, got)
		})
	}
}

func TestRepositoryPersistence(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "history.db")
	run := taskRunFixture("01A", "12", time.Date(2019, 10, 16, 10, 0, 0, 0, time.UTC))

	repo, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{DBPath: path})
	require.NoError(err)
	require.NoError(repo.CreateTaskRun(context.TODO(), run))
	require.NoError(repo.Close())

	repo, err = sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{DBPath: path})
	require.NoError(err)
	defer repo.Close()

	got, err := repo.ListTaskRuns(context.TODO(), storage.TaskRunFilter{})
	require.NoError(err)
	require.Equal([]model.TaskRun{run}, got)
}
