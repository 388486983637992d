// Package memory stores the task run history in memory, used when the history
// is disabled and on tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/storage"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.TaskRunRepository.
type Repository struct {
	runs   map[string]model.TaskRun
	mu     sync.RWMutex
	logger log.Logger
}

var _ storage.TaskRunRepository = &Repository{}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		runs:   make(map[string]model.TaskRun),
		logger: cfg.Logger,
	}, nil
}

func (r *Repository) CreateTaskRun(_ context.Context, tr model.TaskRun) error {
	if tr.ID == "" || tr.TaskID == "" {
		return fmt.Errorf("task run id and task id are required: %w", model.ErrNotValid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runs[tr.ID]; ok {
		return fmt.Errorf("task run %s: %w", tr.ID, model.ErrAlreadyExists)
	}
	r.runs[tr.ID] = tr
	r.logger.Debugf("Stored task run %s for task %s", tr.ID, tr.TaskID)

	return nil
}

// ListTaskRuns returns the runs, newest first.
func (r *Repository) ListTaskRuns(_ context.Context, filter storage.TaskRunFilter) ([]model.TaskRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runs := []model.TaskRun{}
	for _, tr := range r.runs {
		if filter.TaskID != "" && tr.TaskID != filter.TaskID {
			continue
		}
		runs = append(runs, tr)
	}

	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].StartedAt.After(runs[j].StartedAt)
		}
		return runs[i].ID > runs[j].ID
	})

	if filter.Limit > 0 && len(runs) > filter.Limit {
		runs = runs[:filter.Limit]
	}

	return runs, nil
}
