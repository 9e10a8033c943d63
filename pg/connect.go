package pg

import (
	"context"
	"fmt"
	"time"

	"streambench/bench"

	"github.com/jackc/pgx/v5/pgxpool"
)

func DSN(c bench.ConnConfig, sslmode string) string {
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode)
}

func Connect(c bench.ConnConfig, sslmode string) (*pgxpool.Pool, error) {
	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)

	config, err := pgxpool.ParseConfig(DSN(c, sslmode))
	if err != nil {
		return nil, &bench.ConnectError{Addr: addr, Err: err}
	}
	config.MaxConns = 2
	config.MinConns = 1

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, &bench.ConnectError{Addr: addr, Err: err}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &bench.ConnectError{Addr: addr, Err: err}
	}
	return pool, nil
}
