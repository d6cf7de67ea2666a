package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/splax/worksim/internal/repository"
	"github.com/splax/worksim/pkg/config"
	"github.com/splax/worksim/pkg/logger"
)

func sqliteConfig(t *testing.T) config.GeneratorConfig {
	t.Helper()
	return config.GeneratorConfig{DBPath: filepath.Join(t.TempDir(), "out", "worksim.sqlite")}
}

func insertOrg(t *testing.T, s repository.Store) {
	t.Helper()
	err := s.RunInTx(context.Background(), func(ctx context.Context, w repository.RowWriter) error {
		return w.InsertRows(ctx, "organizations",
			[]string{"organization_id", "name", "domain", "created_at"},
			[][]any{{"org-1", "Acme", "acme.com", "2026-03-02T00:00:00Z"}},
		)
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
}

func TestOpenSQLiteAppliesSchema(t *testing.T) {
	cfg := sqliteConfig(t)
	ctx := context.Background()
	s, err := Open(ctx, cfg, logger.Discard(), true)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	insertOrg(t, s)
	n, err := s.Count(ctx, "SELECT COUNT(*) FROM organizations")
	if err != nil || n != 1 {
		t.Fatalf("expected one organization, got %d (%v)", n, err)
	}
	s.Close()

	reopened, err := Open(ctx, cfg, logger.Discard(), false)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if n, _ := reopened.Count(ctx, "SELECT COUNT(*) FROM organizations"); n != 1 {
		t.Fatalf("non-fresh open must keep data, got %d rows", n)
	}
	reopened.Close()

	fresh, err := Open(ctx, cfg, logger.Discard(), true)
	if err != nil {
		t.Fatalf("fresh open: %v", err)
	}
	defer fresh.Close()
	if n, _ := fresh.Count(ctx, "SELECT COUNT(*) FROM organizations"); n != 0 {
		t.Fatalf("fresh open must start empty, got %d rows", n)
	}
}

func TestRemoveDatabaseIgnoresMissingFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sqlite")
	if err := removeDatabase(path); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := removeDatabase(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}
}
