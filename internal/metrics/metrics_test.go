package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type stubWriter struct {
	err error
}

func (s stubWriter) InsertRows(context.Context, string, []string, [][]any) error { return s.err }

func (s stubWriter) UpdateRows(context.Context, string, string, []string, [][]any) error {
	return s.err
}

func TestWriterCountsRows(t *testing.T) {
	m := New()
	w := m.Writer(stubWriter{})
	ctx := context.Background()
	if err := w.InsertRows(ctx, "tasks", []string{"task_id"}, [][]any{{"a"}, {"b"}}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := w.InsertRows(ctx, "tasks", []string{"task_id"}, [][]any{{"c"}}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := w.UpdateRows(ctx, "users", "user_id", []string{"manager_user_id"}, [][]any{{"m", "u"}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := testutil.ToFloat64(m.rowsWritten.WithLabelValues("tasks")); got != 3 {
		t.Fatalf("expected 3 task rows, got %v", got)
	}
	if got := testutil.ToFloat64(m.rowsUpdated.WithLabelValues("users")); got != 1 {
		t.Fatalf("expected 1 updated user row, got %v", got)
	}
}

func TestWriterSkipsFailedWrites(t *testing.T) {
	m := New()
	w := m.Writer(stubWriter{err: errors.New("boom")})
	if err := w.InsertRows(context.Background(), "tasks", nil, [][]any{{"a"}}); err == nil {
		t.Fatal("expected error to pass through")
	}
	if got := testutil.ToFloat64(m.rowsWritten.WithLabelValues("tasks")); got != 0 {
		t.Fatalf("failed write must not count, got %v", got)
	}
}

func TestObserveEnrichmentAndStages(t *testing.T) {
	m := New()
	m.ObserveEnrichment("completed")
	m.ObserveEnrichment("completed")
	m.ObserveEnrichment("cache_hit")
	if got := testutil.ToFloat64(m.enrichment.WithLabelValues("completed")); got != 2 {
		t.Fatalf("expected 2 completed, got %v", got)
	}
	m.ObserveStage("tasks", 250*time.Millisecond)
	m.StartStage("comments")()
	if n := testutil.CollectAndCount(m.stageDuration); n != 2 {
		t.Fatalf("expected 2 stage series, got %d", n)
	}
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Writer(stubWriter{}).InsertRows(context.Background(), "projects", nil, [][]any{{"p"}})
	path := filepath.Join(t.TempDir(), "nested", "worksim.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(raw), `worksim_generator_rows_written_total{table="projects"} 1`) {
		t.Fatalf("textfile missing row counter:\n%s", raw)
	}
}
