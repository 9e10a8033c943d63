package my

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"streambench/bench"

	_ "github.com/go-sql-driver/mysql"
)

func DSN(c bench.ConnConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&allowCleartextPasswords=true&timeout=30s",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

func Connect(c bench.ConnConfig) (*sql.DB, error) {
	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)

	db, err := sql.Open("mysql", DSN(c))
	if err != nil {
		return nil, &bench.ConnectError{Addr: addr, Err: err}
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &bench.ConnectError{Addr: addr, Err: err}
	}
	return db, nil
}
