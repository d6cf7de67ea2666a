package config

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout accepted for WINDOW_END.
const DateLayout = "2006-01-02"

// GeneratorConfig holds runtime configuration for a dataset generation run.
type GeneratorConfig struct {
	Seed               int64
	DBPath             string
	DatabaseURL        string
	HistoryDays        int
	WindowEndDate      string
	TargetUsers        int
	TeamsCount         int
	ProjectsCount      int
	AvgTasksPerProject int
	BatchSize          int
	EnableWebScrape    bool
	MetricsPath        string
	ReportPath         string
	LogLevel           string
	Enrich             EnrichConfig
}

// LoadGeneratorConfig constructs a GeneratorConfig from environment variables
// and the optional .env file.
func LoadGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:               GetInt64("SEED", 1337),
		DBPath:             GetString("DB_PATH", "output/asana_simulation.sqlite"),
		DatabaseURL:        GetString("DATABASE_URL", ""),
		HistoryDays:        GetInt("HISTORY_DAYS", 180),
		WindowEndDate:      GetString("WINDOW_END", time.Now().UTC().Format(DateLayout)),
		TargetUsers:        GetInt("TARGET_USERS", 7000),
		TeamsCount:         GetInt("TEAMS_COUNT", 80),
		ProjectsCount:      GetInt("PROJECTS_COUNT", 240),
		AvgTasksPerProject: GetInt("AVG_TASKS_PER_PROJECT", 260),
		BatchSize:          GetInt("BATCH_SIZE", 5000),
		EnableWebScrape:    GetBool("ENABLE_WEB_SCRAPE", false),
		MetricsPath:        GetString("METRICS_PATH", ""),
		ReportPath:         GetString("REPORT_PATH", "output/sanity_report.json"),
		LogLevel:           GetString("LOG_LEVEL", "info"),
		Enrich:             LoadEnrichConfig(),
	}
}

// WindowEnd returns the anchor of the generation window as UTC midnight.
// Full RFC 3339 timestamps are accepted and truncated to their day.
func (c GeneratorConfig) WindowEnd() (time.Time, error) {
	raw := strings.TrimSpace(c.WindowEndDate)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: WINDOW_END %q", ErrInvalid, c.WindowEndDate)
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// UsePostgres reports whether the run targets PostgreSQL instead of SQLite.
func (c GeneratorConfig) UsePostgres() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// Validate rejects settings the generator cannot honour.
func (c GeneratorConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"HISTORY_DAYS", c.HistoryDays},
		{"TARGET_USERS", c.TargetUsers},
		{"TEAMS_COUNT", c.TeamsCount},
		{"PROJECTS_COUNT", c.ProjectsCount},
		{"AVG_TASKS_PER_PROJECT", c.AvgTasksPerProject},
		{"BATCH_SIZE", c.BatchSize},
	}
	for _, p := range positive {
		if p.value < 1 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.value)
		}
	}
	if !c.UsePostgres() && strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: DB_PATH is required when DATABASE_URL is unset", ErrInvalid)
	}
	if _, err := c.WindowEnd(); err != nil {
		return err
	}
	return c.Enrich.Validate()
}
