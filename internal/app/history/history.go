package history

import (
	"context"
	"fmt"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
	"github.com/netauto/cvpctl/internal/storage"
)

// DefaultLimit is the number of runs listed when no limit is requested.
const DefaultLimit = 50

// ServiceConfig is the configuration for the history service.
type ServiceConfig struct {
	Repository storage.TaskRunRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service lists the local task run history.
type Service struct {
	repo   storage.TaskRunRepository
	logger log.Logger
}

// NewService creates a new history service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the history request parameters.
type Request struct {
	TaskID string
	// Limit is DefaultLimit when zero, negative lists everything.
	Limit int
}

// Run lists the task runs, newest first.
func (s *Service) Run(ctx context.Context, req Request) ([]model.TaskRun, error) {
	limit := req.Limit
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 0:
		limit = 0
	}

	runs, err := s.repo.ListTaskRuns(ctx, storage.TaskRunFilter{TaskID: req.TaskID, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("could not list task runs: %w", err)
	}
	s.logger.Debugf("found %d task runs", len(runs))

	return runs, nil
}
