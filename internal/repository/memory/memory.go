// Package memory collects rows in process. It backs dry runs and tests.
package memory

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/splax/worksim/internal/repository"
)

// TableRows holds everything written to one table, in write order.
type TableRows struct {
	Columns []string
	Rows    [][]any
}

// Store is an in-memory repository.Store. Writes made inside RunInTx become
// visible only when the transaction function succeeds.
type Store struct {
	mu     sync.Mutex
	tables map[string]*TableRows
}

// New returns an empty Store.
func New() *Store {
	return &Store{tables: make(map[string]*TableRows)}
}

var _ repository.Store = (*Store)(nil)

// RunInTx stages writes and merges them on success.
func (s *Store) RunInTx(ctx context.Context, fn repository.TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &writer{tables: cloneTables(s.tables)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.tables = tx.tables
	return nil
}

var countPattern = regexp.MustCompile(`(?i)^\s*select\s+count\(\*\)\s+from\s+([a-z_]+)\s*;?\s*$`)

// Count supports only plain "SELECT COUNT(*) FROM table" queries.
func (s *Store) Count(ctx context.Context, query string) (int64, error) {
	m := countPattern.FindStringSubmatch(query)
	if m == nil {
		return 0, fmt.Errorf("%w: %s", repository.ErrUnsupported, strings.TrimSpace(query))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tables[strings.ToLower(m[1])]; ok {
		return int64(len(t.Rows)), nil
	}
	return 0, nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// Table returns a copy of the rows committed to name.
func (s *Store) Table(name string) TableRows {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[name]
	if !ok {
		return TableRows{}
	}
	return cloneTable(t)
}

// Column returns the committed values of one column.
func (s *Store) Column(table, column string) []any {
	t := s.Table(table)
	idx := -1
	for i, c := range t.Columns {
		if c == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

type writer struct {
	tables map[string]*TableRows
}

func (w *writer) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) error {
	if err := repository.CheckInsert(table, columns, rows); err != nil {
		return err
	}
	t, ok := w.tables[table]
	if !ok {
		t = &TableRows{Columns: append([]string(nil), columns...)}
		w.tables[table] = t
	} else if strings.Join(t.Columns, ",") != strings.Join(columns, ",") {
		return fmt.Errorf("%w: %s written with differing column lists", repository.ErrRowShape, table)
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, append([]any(nil), row...))
	}
	return nil
}

func (w *writer) UpdateRows(ctx context.Context, table, keyColumn string, columns []string, rows [][]any) error {
	if err := repository.CheckUpdate(table, keyColumn, columns, rows); err != nil {
		return err
	}
	t, ok := w.tables[table]
	if !ok {
		return nil
	}
	index := func(name string) int {
		for i, c := range t.Columns {
			if c == name {
				return i
			}
		}
		return -1
	}
	keyIdx := index(keyColumn)
	if keyIdx < 0 {
		return fmt.Errorf("%w: %s.%s not stored", repository.ErrUnknownColumn, table, keyColumn)
	}
	targets := make([]int, len(columns))
	for i, c := range columns {
		if targets[i] = index(c); targets[i] < 0 {
			return fmt.Errorf("%w: %s.%s not stored", repository.ErrUnknownColumn, table, c)
		}
	}
	byKey := make(map[any][]int, len(t.Rows))
	for i, row := range t.Rows {
		byKey[row[keyIdx]] = append(byKey[row[keyIdx]], i)
	}
	for _, update := range rows {
		key := update[len(columns)]
		for _, i := range byKey[key] {
			for j, target := range targets {
				t.Rows[i][target] = update[j]
			}
		}
	}
	return nil
}

func cloneTables(in map[string]*TableRows) map[string]*TableRows {
	out := make(map[string]*TableRows, len(in))
	for name, t := range in {
		c := cloneTable(t)
		out[name] = &c
	}
	return out
}

func cloneTable(t *TableRows) TableRows {
	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]any(nil), row...)
	}
	return TableRows{Columns: append([]string(nil), t.Columns...), Rows: rows}
}
