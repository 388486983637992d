// Package logrus implements log.Logger on top of logrus.
package logrus

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/netauto/cvpctl/internal/log"
)

const (
	// FormatText logs human readable lines, colored unless disabled.
	FormatText = "default"
	// FormatJSON logs one JSON document per line.
	FormatJSON = "json"
)

// Config is the configuration of a logrus based logger.
type Config struct {
	Out     io.Writer
	Level   log.Level
	Format  string
	NoColor bool
}

var levels = map[log.Level]logrus.Level{
	log.LevelDebug:   logrus.DebugLevel,
	log.LevelInfo:    logrus.InfoLevel,
	log.LevelWarning: logrus.WarnLevel,
	log.LevelError:   logrus.ErrorLevel,
}

// New returns a logger writing to cfg.Out.
func New(cfg Config) (log.Logger, error) {
	if cfg.Out == nil {
		return nil, fmt.Errorf("output is required")
	}

	if cfg.Level == "" {
		cfg.Level = log.LevelInfo
	}
	level, ok := levels[cfg.Level]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", cfg.Level)
	}

	l := logrus.New()
	l.Out = cfg.Out
	l.SetLevel(level)

	switch cfg.Format {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !cfg.NoColor,
			DisableColors: cfg.NoColor,
			FullTimestamp: true,
		})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}

	return NewLogrus(logrus.NewEntry(l)), nil
}

type logger struct {
	*logrus.Entry
}

// NewLogrus returns a new log.Logger for a logrus implementation.
func NewLogrus(l *logrus.Entry) log.Logger {
	return logger{Entry: l}
}

func (l logger) WithValues(kv log.Kv) log.Logger {
	return NewLogrus(l.Entry.WithFields(kv))
}

func (l logger) WithCtxValues(ctx context.Context) log.Logger {
	return l.WithValues(log.ValuesFromCtx(ctx))
}

func (l logger) SetValuesOnCtx(parent context.Context, values log.Kv) context.Context {
	return log.CtxWithValues(parent, values)
}
