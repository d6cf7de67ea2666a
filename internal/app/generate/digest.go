package generate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/bytedance/sonic"

	"github.com/splax/worksim/internal/repository"
)

// digestWriter hashes every row on its way to next. Chunking does not change
// the digest because each row is framed on its own.
type digestWriter struct {
	next repository.RowWriter
	h    hash.Hash
}

func newDigestWriter(next repository.RowWriter) *digestWriter {
	return &digestWriter{next: next, h: sha256.New()}
}

func (d *digestWriter) write(op, table string, rows [][]any) error {
	for _, row := range rows {
		raw, err := sonic.ConfigStd.Marshal(row)
		if err != nil {
			return fmt.Errorf("encode %s row: %w", table, err)
		}
		fmt.Fprintf(d.h, "%s %s ", op, table)
		d.h.Write(raw)
		d.h.Write([]byte{'\n'})
	}
	return nil
}

func (d *digestWriter) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) error {
	if err := d.write("insert", table, rows); err != nil {
		return err
	}
	return d.next.InsertRows(ctx, table, columns, rows)
}

func (d *digestWriter) UpdateRows(ctx context.Context, table, keyColumn string, columns []string, rows [][]any) error {
	if err := d.write("update", table, rows); err != nil {
		return err
	}
	return d.next.UpdateRows(ctx, table, keyColumn, columns, rows)
}

// Sum returns the hex digest of everything written so far.
func (d *digestWriter) Sum() string {
	return hex.EncodeToString(d.h.Sum(nil))
}
