package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultReminderHour is the local hour after which an open mission earns a
// soft nudge.
const DefaultReminderHour = 19

// Config holds everything the pathkeeper binary needs to wire itself.
type Config struct {
	// DBPath is the SQLite file holding progress and the journal.
	DBPath string `yaml:"db"`
	// CatalogPath overrides the embedded curriculum. Empty means embedded.
	CatalogPath string `yaml:"catalog"`
	// NudgeStatusPath is where the daily completion status is written for
	// external reminder hooks.
	NudgeStatusPath string `yaml:"nudge_status"`
	LogUseCases     bool   `yaml:"log_use_cases"`
	Reminders       bool   `yaml:"reminders"`
	ReminderHour    int    `yaml:"reminder_hour"`
}

// Dir is the per-user state directory, ~/.pathkeeper.
func Dir(home string) string {
	return filepath.Join(home, ".pathkeeper")
}

// DefaultConfig returns the configuration used when nothing is set.
// Reminders are off by default.
func DefaultConfig(home string) Config {
	dir := Dir(home)
	return Config{
		DBPath:          filepath.Join(dir, "pathkeeper.db"),
		NudgeStatusPath: filepath.Join(dir, "nudge.json"),
		ReminderHour:    DefaultReminderHour,
	}
}

// Load resolves configuration from defaults, then the YAML file at
// PATHKEEPER_CONFIG (or ~/.pathkeeper/config.yaml), then environment
// variables.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	path := os.Getenv("PATHKEEPER_CONFIG")
	if path == "" {
		path = filepath.Join(Dir(home), "config.yaml")
	}
	return LoadFrom(home, path)
}

// LoadFrom is Load with an explicit home directory and config file. A
// missing file is not an error.
func LoadFrom(home, path string) (Config, error) {
	cfg := DefaultConfig(home)
	if err := mergeFile(&cfg, path); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	cfg.expandHome(home)
	if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		return Config{}, fmt.Errorf("reminder_hour %d outside [0,23]", cfg.ReminderHour)
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PATHKEEPER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PATHKEEPER_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("PATHKEEPER_NUDGE_STATUS"); v != "" {
		cfg.NudgeStatusPath = v
	}
	if v := os.Getenv("PATHKEEPER_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PATHKEEPER_REMINDERS"); v != "" {
		cfg.Reminders, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PATHKEEPER_REMINDER_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 23 {
			cfg.ReminderHour = n
		}
	}
}

// expandHome rewrites a leading "~/" in path settings.
func (c *Config) expandHome(home string) {
	for _, p := range []*string{&c.DBPath, &c.CatalogPath, &c.NudgeStatusPath} {
		if rest, ok := strings.CutPrefix(*p, "~/"); ok {
			*p = filepath.Join(home, rest)
		}
	}
}
