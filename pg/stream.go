package pg

import (
	"context"

	"streambench/bench"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Stream chunks a pgx row cursor into batches of at most batchSize rows.
// Byte counts come from the raw wire values pgx exposes per row.
type Stream struct {
	rows      pgx.Rows
	batchSize int
	hasRow    bool
	done      bool
}

// Open issues the query and primes the cursor so a rejected query surfaces
// here, before the first batch, rather than mid-stream.
func Open(ctx context.Context, pool *pgxpool.Pool, query string, batchSize int) (*Stream, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, &bench.QueryError{Query: query, Err: err}
	}

	s := &Stream{rows: rows, batchSize: batchSize}
	s.hasRow = rows.Next()
	if !s.hasRow {
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, &bench.QueryError{Query: query, Err: err}
		}
		s.done = true
	}
	return s, nil
}

func (s *Stream) Next(_ context.Context) (*bench.Batch, error) {
	if s.done {
		return nil, nil
	}

	batch := &bench.Batch{}
	for s.hasRow {
		vals, err := s.rows.Values()
		if err != nil {
			return nil, err
		}
		// RawValues is only valid until the cursor advances.
		for _, raw := range s.rows.RawValues() {
			batch.Bytes += int64(len(raw))
		}
		batch.Rows = append(batch.Rows, vals)

		s.hasRow = s.rows.Next()
		if batch.Len() >= s.batchSize {
			break
		}
	}

	if !s.hasRow {
		s.done = true
		if err := s.rows.Err(); err != nil {
			return nil, err
		}
	}
	if batch.Len() == 0 {
		return nil, nil
	}
	return batch, nil
}

func (s *Stream) Close() {
	s.rows.Close()
}
