// Package config loads lessonplan settings from a TOML file and environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds every process-level setting. The remote endpoint URL is not
// here: it is a record owned by the planner store.
type Config struct {
	DBPath          string
	LogLevel        string
	LogFormat       string
	WeekStart       time.Weekday
	HTTPTimeout     time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultConfigPath      = "~/.config/lessonplan/config.toml"
	defaultDBPath          = "~/.lessonplan/lessonplan.db"
	defaultLogLevel        = "warn"
	defaultLogFormat       = "console"
	defaultHTTPTimeout     = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Default returns a Config with defaults applied and paths expanded.
func Default() Config {
	return Config{
		DBPath:          mustExpand(defaultDBPath),
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
		WeekStart:       time.Sunday,
		HTTPTimeout:     defaultHTTPTimeout,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

type fileConfig struct {
	DBPath            string `toml:"db_path"`
	LogLevel          string `toml:"log_level"`
	LogFormat         string `toml:"log_format"`
	WeekStart         string `toml:"week_start"`
	HTTPTimeoutMs     int    `toml:"http_timeout_ms"`
	ShutdownTimeoutMs int    `toml:"shutdown_timeout_ms"`
}

// Load reads the TOML file at path (the default location when empty), falls
// back to defaults when it does not exist, then applies LESSONPLAN_*
// environment overrides.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv("LESSONPLAN_CONFIG")
	}
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		var raw fileConfig
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if err := cfg.apply(raw); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", resolved, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(raw fileConfig) error {
	if v := strings.TrimSpace(raw.DBPath); v != "" {
		c.DBPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(raw.LogFormat); v != "" {
		c.LogFormat = v
	}
	if v := strings.TrimSpace(raw.WeekStart); v != "" {
		day, err := ParseWeekday(v)
		if err != nil {
			return err
		}
		c.WeekStart = day
	}
	if raw.HTTPTimeoutMs > 0 {
		c.HTTPTimeout = time.Duration(raw.HTTPTimeoutMs) * time.Millisecond
	}
	if raw.ShutdownTimeoutMs > 0 {
		c.ShutdownTimeout = time.Duration(raw.ShutdownTimeoutMs) * time.Millisecond
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LESSONPLAN_DB"); v != "" {
		if v == ":memory:" {
			c.DBPath = v
		} else {
			c.DBPath = mustExpand(v)
		}
	}
	if v := os.Getenv("LESSONPLAN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LESSONPLAN_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("LESSONPLAN_WEEK_START"); v != "" {
		day, err := ParseWeekday(v)
		if err != nil {
			return fmt.Errorf("LESSONPLAN_WEEK_START: %w", err)
		}
		c.WeekStart = day
	}
	if v := os.Getenv("LESSONPLAN_HTTP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.HTTPTimeout = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("LESSONPLAN_SHUTDOWN_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.ShutdownTimeout = time.Duration(n) * time.Millisecond
		}
	}
	return nil
}

// ParseWeekday accepts an English weekday name or its three-letter prefix.
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || v == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
