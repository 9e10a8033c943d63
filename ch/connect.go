package ch

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"streambench/bench"

	"github.com/ClickHouse/clickhouse-go/v2"
)

func Connect(c bench.ConnConfig) (*sql.DB, error) {
	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)

	db := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: c.Database,
			Username: c.User,
			Password: c.Password,
		},
		DialTimeout: 10 * time.Second,
	})
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &bench.ConnectError{Addr: addr, Err: err}
	}
	return db, nil
}
