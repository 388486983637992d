package cvpctl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/netauto/cvpctl/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary   string
	Host     string
	Username string
	Password string
}

func (c *Config) defaults() error {
	// go test changes the CWD to the package directory, relative paths would
	// point to the wrong place.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("CVPCTL_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("cvpctl binary not found at %q: %w", c.Binary, err)
	}

	if c.Host == "" {
		return fmt.Errorf("CVP server is required (CVPCTL_INTEGRATION_CVP)")
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "CVPCTL_INTEGRATION"
		envBinary     = "CVPCTL_INTEGRATION_BINARY"
		envCVP        = "CVPCTL_INTEGRATION_CVP"
		envUser       = "CVPCTL_INTEGRATION_USER"
		envPass       = "CVPCTL_INTEGRATION_PASS"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary:   os.Getenv(envBinary),
		Host:     os.Getenv(envCVP),
		Username: os.Getenv(envUser),
		Password: os.Getenv(envPass),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// RunCmd runs a cvpctl command against the lab server with a specific history
// database. The server settings are passed with an env file next to the
// database, the user config of the host is ignored.
func RunCmd(ctx context.Context, config Config, dbPath, cmdArgs string) (stdout, stderr []byte, err error) {
	dir := filepath.Dir(dbPath)
	envFile := filepath.Join(dir, "test.env")
	envData := fmt.Sprintf("CVP_HOST=%s\nCVP_USER=%s\nCVP_PASS=%s\n", config.Host, config.Username, config.Password)
	if err := os.WriteFile(envFile, []byte(envData), 0o600); err != nil {
		return nil, nil, fmt.Errorf("could not write env file: %w", err)
	}

	args := fmt.Sprintf("--db-path %s --env-file %s %s", dbPath, envFile, cmdArgs)

	return testutils.RunCVPCTL(ctx, []string{"HOME=" + dir}, config.Binary, args, true)
}

// RunTaskList lists the pending tasks in JSON format.
func RunTaskList(ctx context.Context, config Config, dbPath string) (stdout, stderr []byte, err error) {
	return RunCmd(ctx, config, dbPath, "task list --format json")
}

// RunHistory lists the recorded task runs in JSON format.
func RunHistory(ctx context.Context, config Config, dbPath string) (stdout, stderr []byte, err error) {
	return RunCmd(ctx, config, dbPath, "history --format json")
}

// RunBackup saves the server configlets into dir.
func RunBackup(ctx context.Context, config Config, dbPath, dir string) (stdout, stderr []byte, err error) {
	return RunCmd(ctx, config, dbPath, fmt.Sprintf("backup -b %s --format json", dir))
}
