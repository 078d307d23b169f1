package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fittrack/internal/platform/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FITTRACK_STATE_DIR", t.TempDir())
	t.Setenv("FITTRACK_API_URL", "")
	t.Setenv("FITTRACK_WEEKLY_GOAL_MINUTES", "")

	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Fatalf("unexpected default base url: %s", cfg.APIBaseURL)
	}
	if cfg.WeeklyGoalMinutes != 150 {
		t.Fatalf("expected default weekly goal 150, got %d", cfg.WeeklyGoalMinutes)
	}
	if cfg.MaxUploadBytes != 5*1024*1024 {
		t.Fatalf("expected 5MiB upload ceiling, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadTreatsEmptyEnvAsUnset(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("log_level: debug\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), payload, 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("FITTRACK_STATE_DIR", dir)
	t.Setenv("FITTRACK_LOG_LEVEL", "")

	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("empty env var must yield to the file value, got %s", cfg.LogLevel)
	}
}

func TestLoadFileOverridesDefaultsButNotEnv(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("api_base_url: https://fit.example.com/api\nweekly_goal_minutes: 210\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), payload, 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("FITTRACK_STATE_DIR", dir)
	t.Setenv("FITTRACK_API_URL", "")
	t.Setenv("FITTRACK_WEEKLY_GOAL_MINUTES", "90")

	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://fit.example.com/api" {
		t.Fatalf("file should override default base url, got %s", cfg.APIBaseURL)
	}
	if cfg.WeeklyGoalMinutes != 90 {
		t.Fatalf("env should override file weekly goal, got %d", cfg.WeeklyGoalMinutes)
	}
}

func TestLoadRejectsBadYAMLAndNonPositiveGoal(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":\n-bad"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("FITTRACK_STATE_DIR", dir)
	if _, err := config.Load(context.Background()); err == nil {
		t.Fatalf("malformed yaml must fail")
	}

	t.Setenv("FITTRACK_STATE_DIR", t.TempDir())
	t.Setenv("FITTRACK_WEEKLY_GOAL_MINUTES", "-5")
	if _, err := config.Load(context.Background()); err == nil {
		t.Fatalf("non-positive weekly goal must fail")
	}
}
