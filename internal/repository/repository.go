package repository

import "context"

// RowWriter persists generated rows. Values are string, int64, float64 or nil.
type RowWriter interface {
	// InsertRows appends rows to table. Every row lines up with columns.
	InsertRows(ctx context.Context, table string, columns []string, rows [][]any) error
	// UpdateRows sets columns on the rows identified by keyColumn. Each row
	// carries the new values in column order followed by the key value.
	UpdateRows(ctx context.Context, table, keyColumn string, columns []string, rows [][]any) error
}

// TxFunc runs inside a store transaction.
type TxFunc func(ctx context.Context, w RowWriter) error

// Store is a relational backend for one generation run.
type Store interface {
	// RunInTx commits everything fn writes, or nothing when fn fails.
	RunInTx(ctx context.Context, fn TxFunc) error
	// Count runs a single-value aggregate query.
	Count(ctx context.Context, query string) (int64, error)
	Close() error
}
