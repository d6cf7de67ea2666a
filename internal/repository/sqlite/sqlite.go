// Package sqlite stores generated rows in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/splax/worksim/internal/repository"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Store implements repository.Store on SQLite.
type Store struct {
	db *sql.DB
}

// DSN builds a connection string for path with foreign keys enforced.
func DSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + q.Encode()
}

// Open opens (creating when needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := sql.Open(DriverName, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Store{db: db}, nil
}

var _ repository.Store = (*Store)(nil)

// RunInTx wraps fn in one transaction.
func (s *Store) RunInTx(ctx context.Context, fn repository.TxFunc) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()
	if err = fn(ctx, writer{tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Count runs a single-value aggregate.
func (s *Store) Count(ctx context.Context, query string) (int64, error) {
	var n sql.NullInt64
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return n.Int64, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

type writer struct {
	tx *sql.Tx
}

func (w writer) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) error {
	if err := repository.CheckInsert(table, columns, rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return w.execEach(ctx, table, repository.InsertStatement(table, columns, repository.Question), rows)
}

func (w writer) UpdateRows(ctx context.Context, table, keyColumn string, columns []string, rows [][]any) error {
	if err := repository.CheckUpdate(table, keyColumn, columns, rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return w.execEach(ctx, table, repository.UpdateStatement(table, keyColumn, columns, repository.Question), rows)
}

func (w writer) execEach(ctx context.Context, table, query string, rows [][]any) error {
	stmt, err := w.tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare %s: %w", table, err)
	}
	defer stmt.Close()
	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("write %s row %d: %w", table, i, err)
		}
	}
	return nil
}
