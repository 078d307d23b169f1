package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Config carries everything the client needs to talk to the FitTrack API
// and to keep its own state on disk. Environment variables win over the
// optional YAML file, which wins over defaults.
type Config struct {
	APIBaseURL        string `env:"FITTRACK_API_URL, default=http://localhost:8080/api"`
	StateDir          string `env:"FITTRACK_STATE_DIR"`
	LogLevel          string `env:"FITTRACK_LOG_LEVEL, default=info"`
	WeeklyGoalMinutes int    `env:"FITTRACK_WEEKLY_GOAL_MINUTES, default=150"`
	MaxUploadBytes    int64  `env:"FITTRACK_MAX_UPLOAD_BYTES, default=5242880"`
}

type fileConfig struct {
	APIBaseURL        string `yaml:"api_base_url"`
	LogLevel          string `yaml:"log_level"`
	WeeklyGoalMinutes int    `yaml:"weekly_goal_minutes"`
}

// skipEmptyLookuper hides variables that are set to the empty string so
// that FITTRACK_API_URL="" falls back to the default instead of yielding
// an empty base URL.
type skipEmptyLookuper struct {
	next envconfig.Lookuper
}

func (l skipEmptyLookuper) Lookup(key string) (string, bool) {
	value, ok := l.next.Lookup(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Load resolves the config: defaults, then <state dir>/config.yaml,
// then environment variables. An empty environment value counts as unset.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: skipEmptyLookuper{next: envconfig.OsLookuper()},
	})
	if err != nil {
		return Config{}, fmt.Errorf("config: process environment: %w", err)
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("config: resolve home dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".fittrack")
	}

	fc, err := readFile(filepath.Join(cfg.StateDir, "config.yaml"))
	if err != nil {
		return Config{}, err
	}
	// Only fill from the file where the environment did not set a value.
	if os.Getenv("FITTRACK_API_URL") == "" && fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if os.Getenv("FITTRACK_LOG_LEVEL") == "" && fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if os.Getenv("FITTRACK_WEEKLY_GOAL_MINUTES") == "" && fc.WeeklyGoalMinutes > 0 {
		cfg.WeeklyGoalMinutes = fc.WeeklyGoalMinutes
	}

	if cfg.WeeklyGoalMinutes <= 0 {
		return Config{}, fmt.Errorf("config: weekly goal must be positive, got %d", cfg.WeeklyGoalMinutes)
	}
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return fc, nil
}
