// Package config loads the tool configuration from defaults, an optional
// config file, the environment and the command line, in that precedence order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultEnvFile = ".env"

// Config is the tool configuration.
type Config struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Protocol       string `mapstructure:"proto"`
	Username       string `mapstructure:"user"`
	Password       string `mapstructure:"pass"`
	TimeZone       string `mapstructure:"tz"`
	Country        string `mapstructure:"country"`
	BackupDir      string `mapstructure:"backup"`
	ActionsFile    string `mapstructure:"json"`
	CertValidation bool   `mapstructure:"cert_validation"`
	LogLevel       string `mapstructure:"log_level"`
}

var defaults = map[string]any{
	"host":            "127.0.0.2",
	"port":            443,
	"proto":           "https",
	"user":            "username",
	"pass":            "password",
	"tz":              "France",
	"country":         "France",
	"backup":          "configlets_backup",
	"json":            "actions.json",
	"cert_validation": false,
	"log_level":       "info",
}

// Environment variables of each key, the first one set wins. Historic names
// are kept so existing environments keep working.
var envVars = map[string][]string{
	"host":            {"CVP_HOST"},
	"port":            {"CVP_PORT"},
	"proto":           {"CVP_PROTO"},
	"user":            {"CVP_USER"},
	"pass":            {"CVP_PASS"},
	"tz":              {"CVP_TZ"},
	"country":         {"CVP_COUNTRY"},
	"backup":          {"CVP_BACKUP"},
	"json":            {"CVP_JSON"},
	"cert_validation": {"CERT_VALIDATION"},
	"log_level":       {"CVP_LOG_LEVEL", "LOG_LEVEL"},
}

// LoadOptions customize the configuration loading.
type LoadOptions struct {
	// ConfigFile is an optional YAML, JSON or TOML file.
	ConfigFile string
	// EnvFile is loaded into the environment before reading it. When empty a
	// .env file in the working directory is used if present.
	EnvFile string
	// Overrides have the highest precedence, keyed by config key (e.g. "host").
	Overrides map[string]any
}

// Load returns the resolved configuration.
func Load(opts LoadOptions) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	for k, envs := range envVars {
		if err := v.BindEnv(append([]string{k}, envs...)...); err != nil {
			return nil, fmt.Errorf("could not bind %s environment variables: %w", k, err)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load env file: %w", err)
		}
		return nil
	}

	err := godotenv.Load(defaultEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load %s file: %w", defaultEnvFile, err)
	}

	return nil
}

func (c *Config) validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", c.Port)
	}

	c.Protocol = strings.ToLower(c.Protocol)
	if c.Protocol != "http" && c.Protocol != "https" {
		return fmt.Errorf("unknown protocol %q, use http or https", c.Protocol)
	}

	return nil
}
