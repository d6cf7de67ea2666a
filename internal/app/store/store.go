// Package store opens the configured backend with its schema in place.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/splax/worksim/internal/app/migrate"
	"github.com/splax/worksim/internal/repository"
	"github.com/splax/worksim/internal/repository/postgres"
	"github.com/splax/worksim/internal/repository/sqlite"
	"github.com/splax/worksim/pkg/config"
)

// Migrator returns the migration runner for the configured backend.
func Migrator(cfg config.GeneratorConfig, logger *slog.Logger) (migrate.Runner, error) {
	if cfg.UsePostgres() {
		return migrate.New(migrate.Postgres, cfg.DatabaseURL, logger)
	}
	return migrate.New(migrate.SQLite, sqlite.DSN(cfg.DBPath), logger)
}

// Open connects to the configured backend and applies pending migrations.
// When fresh is set the previous dataset is discarded first: the SQLite file
// is removed, a PostgreSQL schema is rolled back and reapplied.
func Open(ctx context.Context, cfg config.GeneratorConfig, logger *slog.Logger, fresh bool) (repository.Store, error) {
	if fresh && !cfg.UsePostgres() {
		if err := removeDatabase(cfg.DBPath); err != nil {
			return nil, err
		}
	}
	if !cfg.UsePostgres() {
		// The database directory must exist before migrations open the file.
		s, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := ensure(ctx, cfg, logger, false); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	}

	if err := ensure(ctx, cfg, logger, fresh); err != nil {
		return nil, err
	}
	s, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func ensure(ctx context.Context, cfg config.GeneratorConfig, logger *slog.Logger, reset bool) error {
	runner, err := Migrator(cfg, logger)
	if err != nil {
		return fmt.Errorf("migration runner: %w", err)
	}
	if reset {
		return runner.Reset(ctx)
	}
	return runner.Ensure(ctx)
}

func removeDatabase(path string) error {
	for _, p := range []string{path, path + "-wal", path + "-shm", path + "-journal"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove previous database: %w", err)
		}
	}
	return nil
}
