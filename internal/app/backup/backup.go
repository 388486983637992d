package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/model"
)

// ConfigletLister returns all the configlets of the server.
type ConfigletLister interface {
	GetConfiglets(ctx context.Context) ([]model.Configlet, error)
}

// ServiceConfig is the configuration for the backup service.
type ServiceConfig struct {
	Client ConfigletLister
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Client == nil {
		return fmt.Errorf("client is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Backup"})

	return nil
}

// Service exports the server configlets to local files.
type Service struct {
	client ConfigletLister
	logger log.Logger
}

// NewService creates a new backup service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Request represents a backup request.
type Request struct {
	Directory string
}

// Run writes one JSON file per configlet in the directory, creating it when
// missing. Existing backups of the same configlet are replaced.
func (s *Service) Run(ctx context.Context, req Request) ([]model.BackupFile, error) {
	if req.Directory == "" {
		return nil, fmt.Errorf("backup directory is required: %w", model.ErrNotValid)
	}

	if err := os.MkdirAll(req.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("could not create backup directory: %w", err)
	}

	configlets, err := s.client.GetConfiglets(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list configlets: %w", err)
	}
	s.logger.Infof("Found %d configlets to backup", len(configlets))

	files := make([]model.BackupFile, 0, len(configlets))
	for _, c := range configlets {
		path := filepath.Join(req.Directory, FileName(c.Name))

		// Map keys are sorted by the encoder.
		data, err := json.MarshalIndent(document(c), "", "    ")
		if err != nil {
			return files, fmt.Errorf("could not encode configlet %q: %w", c.Name, err)
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return files, fmt.Errorf("could not write configlet %q backup: %w", c.Name, err)
		}
		s.logger.Debugf("Configlet %s saved in %s", c.Name, path)

		files = append(files, model.BackupFile{
			Configlet: c.Name,
			Path:      path,
			SizeBytes: int64(len(data)),
		})
	}
	s.logger.Infof("Backup complete, configlets have been saved in %s", req.Directory)

	return files, nil
}

// FileName returns the backup file name of a configlet.
func FileName(configlet string) string {
	return "configlet-" + strings.ReplaceAll(configlet, " ", "-") + ".json"
}

// document returns the server document when we have it.
func document(c model.Configlet) map[string]any {
	if c.Raw != nil {
		return c.Raw
	}

	return map[string]any{
		"key":    c.Key,
		"name":   c.Name,
		"config": c.Config,
		"type":   c.Type,
	}
}
