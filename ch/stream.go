package ch

import (
	"context"
	"database/sql"

	"streambench/bench"
)

func Open(ctx context.Context, db *sql.DB, query string, batchSize int) (*bench.SQLStream, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &bench.QueryError{Query: query, Err: err}
	}
	s, err := bench.NewSQLStream(rows, batchSize)
	if err != nil {
		return nil, &bench.QueryError{Query: query, Err: err}
	}
	return s, nil
}
