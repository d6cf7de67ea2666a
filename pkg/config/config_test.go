package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetHelpersFallBackOnEmptyAndInvalid(t *testing.T) {
	t.Setenv("WORKSIM_TEST_EMPTY", "")
	t.Setenv("WORKSIM_TEST_INT", "not-a-number")
	t.Setenv("WORKSIM_TEST_BOOL", "on")

	if got := GetString("WORKSIM_TEST_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for empty value, got %q", got)
	}
	if got := GetInt("WORKSIM_TEST_INT", 7); got != 7 {
		t.Fatalf("expected fallback for invalid int, got %d", got)
	}
	if !GetBool("WORKSIM_TEST_BOOL", false) {
		t.Fatalf("expected on to parse as true")
	}
}

func TestLoadGeneratorConfigReadsEnvironment(t *testing.T) {
	t.Setenv("SEED", "42")
	t.Setenv("AVG_TASKS_PER_PROJECT", "50")
	t.Setenv("WINDOW_END", "2026-03-15")
	t.Setenv("USE_LLM_TEXT", "true")

	cfg := LoadGeneratorConfig()
	if cfg.Seed != 42 || cfg.AvgTasksPerProject != 50 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	end, err := cfg.WindowEnd()
	if err != nil {
		t.Fatalf("window end: %v", err)
	}
	if !end.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected window end %s", end)
	}
	if cfg.Enrich.Active() {
		t.Fatalf("enrichment without an api key must stay inactive")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := GeneratorConfig{
		HistoryDays:        30,
		TargetUsers:        10,
		TeamsCount:         2,
		ProjectsCount:      1,
		AvgTasksPerProject: 0,
		BatchSize:          10,
		DBPath:             "out.sqlite",
		WindowEndDate:      "2026-01-01",
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for zero tasks per project, got %v", err)
	}

	cfg.AvgTasksPerProject = 10
	cfg.WindowEndDate = "yesterday"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for bad window end, got %v", err)
	}

	cfg.WindowEndDate = "2026-01-01T17:45:00Z"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestNewSourceReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("WORKSIM_DOTENV_ONLY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	v := newSource(path)
	if got := v.GetString("WORKSIM_DOTENV_ONLY"); got != "from-file" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}
