package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/splax/worksim/internal/repository"
)

// Store implements repository.Store on PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps an existing pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Open connects to dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return New(pool), nil
}

var _ repository.Store = (*Store)(nil)

// RunInTx wraps fn in one transaction.
func (s *Store) RunInTx(ctx context.Context, fn repository.TxFunc) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()
	if err = fn(ctx, writer{tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Count runs a single-value aggregate.
func (s *Store) Count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return n, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

type writer struct {
	tx pgx.Tx
}

// InsertRows streams rows through the COPY protocol.
func (w writer) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) error {
	if err := repository.CheckInsert(table, columns, rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	n, err := w.tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy into %s: %w", table, err)
	}
	if n != int64(len(rows)) {
		return fmt.Errorf("copy into %s: wrote %d of %d rows", table, n, len(rows))
	}
	return nil
}

// UpdateRows sends one batch of keyed updates.
func (w writer) UpdateRows(ctx context.Context, table, keyColumn string, columns []string, rows [][]any) error {
	if err := repository.CheckUpdate(table, keyColumn, columns, rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	query := repository.UpdateStatement(table, keyColumn, columns, repository.Dollar)
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query, row...)
	}
	results := w.tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("update %s: %w", table, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch for %s: %w", table, err)
	}
	return nil
}
