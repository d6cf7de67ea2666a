package repository

import "context"

// DefaultChunkSize is used when a non-positive size is requested.
const DefaultChunkSize = 5000

type chunkedWriter struct {
	next RowWriter
	size int
}

// Chunked splits every call on w into batches of at most size rows. Chunk
// boundaries do not change what ends up stored.
func Chunked(w RowWriter, size int) RowWriter {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return chunkedWriter{next: w, size: size}
}

func (c chunkedWriter) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) error {
	return eachChunk(rows, c.size, func(chunk [][]any) error {
		return c.next.InsertRows(ctx, table, columns, chunk)
	})
}

func (c chunkedWriter) UpdateRows(ctx context.Context, table, keyColumn string, columns []string, rows [][]any) error {
	return eachChunk(rows, c.size, func(chunk [][]any) error {
		return c.next.UpdateRows(ctx, table, keyColumn, columns, chunk)
	})
}

func eachChunk(rows [][]any, size int, fn func([][]any) error) error {
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		if err := fn(rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}
