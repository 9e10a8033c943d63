package bench

import (
	"context"
	"database/sql"
	"time"
)

// SQLStream adapts a database/sql row cursor into a BatchStream, chunking
// rows into batches of at most batchSize. Byte sizes are estimated from the
// scanned values since database/sql exposes no raw wire lengths.
type SQLStream struct {
	rows      *sql.Rows
	batchSize int
	cols      int
	done      bool
}

func NewSQLStream(rows *sql.Rows, batchSize int) (*SQLStream, error) {
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}
	return &SQLStream{rows: rows, batchSize: batchSize, cols: len(cols)}, nil
}

func (s *SQLStream) Next(_ context.Context) (*Batch, error) {
	if s.done {
		return nil, nil
	}

	batch := &Batch{}
	for len(batch.Rows) < s.batchSize && s.rows.Next() {
		vals := make([]any, s.cols)
		ptrs := make([]any, s.cols)
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := s.rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		batch.Rows = append(batch.Rows, vals)
		for _, v := range vals {
			batch.Bytes += SizeOf(v)
		}
	}

	if len(batch.Rows) < s.batchSize {
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

func (s *SQLStream) Close() {
	s.rows.Close()
}

// SizeOf approximates the wire size of one scanned column value.
func SizeOf(v any) int64 {
	switch v := v.(type) {
	case nil:
		return 0
	case []byte:
		return int64(len(v))
	case string:
		return int64(len(v))
	case time.Time:
		return 8
	case bool:
		return 1
	default:
		return 8
	}
}
