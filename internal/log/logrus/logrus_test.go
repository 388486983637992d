package logrus_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netauto/cvpctl/internal/log"
	"github.com/netauto/cvpctl/internal/log/logrus"
)

func TestNewJSONLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logrus.New(logrus.Config{Out: &buf, Level: log.LevelWarning, Format: logrus.FormatJSON})
	require.NoError(t, err)

	logger = logger.WithValues(log.Kv{"svc": "test"})
	logger.Infof("hidden")
	logger.Warningf("Task %s status: %s", "12", "COMPLETED")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warning", line["level"])
	assert.Equal(t, "Task 12 status: COMPLETED", line["msg"])
	assert.Equal(t, "test", line["svc"])
}

func TestNewContextValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logrus.New(logrus.Config{Out: &buf, Format: logrus.FormatText, NoColor: true})
	require.NoError(t, err)

	ctx := logger.SetValuesOnCtx(context.Background(), log.Kv{"task-id": "12"})
	logger.WithCtxValues(ctx).Infof("waiting")

	assert.Contains(t, buf.String(), "task-id=12")
	assert.Contains(t, buf.String(), "msg=waiting")
}

func TestNewInvalid(t *testing.T) {
	tests := map[string]logrus.Config{
		"A missing output should fail.":  {},
		"An unknown format should fail.": {Out: &bytes.Buffer{}, Format: "xml"},
		"An unknown level should fail.":  {Out: &bytes.Buffer{}, Level: "trace"},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := logrus.New(cfg)
			assert.Error(t, err)
		})
	}
}
