package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"streambench/bench"
	"streambench/ch"
	"streambench/my"
	"streambench/pg"
)

func main() {
	cmd := flag.NewFlagSet("streambench", flag.ExitOnError)

	// Data source
	dbType := cmd.String("db", "", "Database type: postgres, mysql, clickhouse")
	host := cmd.String("host", "", "Server host (e.g., 127.0.0.1)")
	port := cmd.Int("port", 0, "Server port (default per driver: 5432, 3306, 9000)")
	user := cmd.String("user", "", "Username")
	pass := cmd.String("pass", "", "Password")
	database := cmd.String("database", "", "Database name")

	// Stream parameters
	query := cmd.String("query", "", "Query to stream")
	batchSize := cmd.Int("batch-size", 0, "Max rows per batch")
	runs := cmd.Int("runs", 0, "Number of runs for median reporting")
	seedRows := cmd.Int("seed-rows", 0, "Rows to seed into the samples table (0 = skip)")

	pause := cmd.Bool("pause", false, "Print PID and wait for Enter before streaming")
	configPath := cmd.String("config", "", "YAML config file (explicit flags override it)")

	cmd.Parse(os.Args[1:])

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := bench.LoadConfig(*configPath)
		if err != nil {
			fmt.Printf("  ✗ %v\n", err)
			os.Exit(1)
		}
		overlay(&cfg, loaded)
	}

	cmd.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db":
			cfg.Driver = *dbType
		case "host":
			cfg.Conn.Host = *host
		case "port":
			cfg.Conn.Port = *port
		case "user":
			cfg.Conn.User = *user
		case "pass":
			cfg.Conn.Password = *pass
		case "database":
			cfg.Conn.Database = *database
		case "query":
			cfg.Stream.Query = *query
		case "batch-size":
			cfg.Stream.BatchSize = *batchSize
		case "runs":
			cfg.Stream.Runs = *runs
		case "seed-rows":
			cfg.Stream.SeedRows = *seedRows
		}
	})

	if cfg.Conn.Host == "" {
		usage()
		os.Exit(1)
	}
	if cfg.Conn.Port == 0 {
		cfg.Conn.Port = defaultPort(cfg.Driver)
	}

	if *pause {
		fmt.Printf("go? %d ", os.Getpid())
		bufio.NewReader(os.Stdin).ReadString('\n')
	}

	var err error
	switch cfg.Driver {
	case "postgres":
		err = runPostgres(cfg.Conn, cfg.Stream)
	case "mysql":
		err = runMySQL(cfg.Conn, cfg.Stream)
	case "clickhouse":
		err = runClickHouse(cfg.Conn, cfg.Stream)
	default:
		fmt.Printf("Unknown database type: %s\n", cfg.Driver)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("  ✗ %v\n", err)
		os.Exit(1)
	}
}

func defaultConfig() bench.Config {
	return bench.Config{
		Driver: "postgres",
		Stream: bench.StreamParams{
			Query:     "SELECT * FROM samples",
			BatchSize: 65536,
			Runs:      1,
		},
	}
}

func defaultPort(driver string) int {
	switch driver {
	case "mysql":
		return 3306
	case "clickhouse":
		return 9000
	default:
		return 5432
	}
}

// overlay copies the file config over the defaults, field by field, skipping
// anything the file left unset.
func overlay(dst *bench.Config, src *bench.Config) {
	if src.Driver != "" {
		dst.Driver = src.Driver
	}
	if src.Conn.Host != "" {
		dst.Conn.Host = src.Conn.Host
	}
	if src.Conn.Port != 0 {
		dst.Conn.Port = src.Conn.Port
	}
	if src.Conn.User != "" {
		dst.Conn.User = src.Conn.User
	}
	if src.Conn.Password != "" {
		dst.Conn.Password = src.Conn.Password
	}
	if src.Conn.Database != "" {
		dst.Conn.Database = src.Conn.Database
	}
	if src.Stream.Query != "" {
		dst.Stream.Query = src.Stream.Query
	}
	if src.Stream.BatchSize != 0 {
		dst.Stream.BatchSize = src.Stream.BatchSize
	}
	if src.Stream.Runs != 0 {
		dst.Stream.Runs = src.Stream.Runs
	}
	if src.Stream.SeedRows != 0 {
		dst.Stream.SeedRows = src.Stream.SeedRows
	}
}

func usage() {
	fmt.Println("Usage: streambench [flags]")
	fmt.Println()
	fmt.Println("Required flags (or via -config):")
	fmt.Println("  -host          Server host")
	fmt.Println("  -user          Username")
	fmt.Println("  -pass          Password")
	fmt.Println("  -database      Database name")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -db            Database type: postgres, mysql, clickhouse (default: postgres)")
	fmt.Println("  -port          Server port (default per driver: 5432, 3306, 9000)")
	fmt.Println("  -query         Query to stream (default: SELECT * FROM samples)")
	fmt.Println("  -batch-size    Max rows per batch (default: 65536)")
	fmt.Println("  -runs          Runs for median reporting (default: 1)")
	fmt.Println("  -seed-rows     Rows to seed into the samples table (default: 0 = skip)")
	fmt.Println("  -pause         Print PID and wait for Enter before streaming")
	fmt.Println("  -config        YAML config file (explicit flags override it)")
}

func printHeader(title string, params bench.StreamParams) {
	fmt.Println("═══════════════════════════════════════════")
	fmt.Printf("  %s\n", title)
	fmt.Println("═══════════════════════════════════════════")
	fmt.Printf("  Query: %s | Batch size: %d\n\n", params.Query, params.BatchSize)
}

func runPostgres(conn bench.ConnConfig, params bench.StreamParams) error {
	printHeader("PostgreSQL Batch Stream Benchmark", params)

	fmt.Println("[1/2] Connecting to PostgreSQL...")
	pool, err := pg.Connect(conn, "disable")
	if err != nil {
		return err
	}
	defer pool.Close()
	fmt.Println("  ✓ Connected")

	if params.SeedRows > 0 {
		fmt.Println("\n[2/2] Seeding test data...")
		if err := pg.SeedData(pool, params.SeedRows); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Println("  ✓ Data ready")
	}
	fmt.Println()

	stats, err := bench.RunMultiple(params.Runs, "PostgreSQL Stream", func(run int) (bench.StreamStats, error) {
		stream, err := pg.Open(context.Background(), pool, params.Query, params.BatchSize)
		if err != nil {
			return bench.StreamStats{}, err
		}
		defer stream.Close()

		progress := bench.NewProgress(os.Stdout)
		res, err := bench.Consume(context.Background(), stream, progress)
		progress.Finish()
		if err != nil {
			return bench.StreamStats{}, err
		}
		return bench.ComputeStreamStats("PostgreSQL Stream", res), nil
	})
	if err != nil {
		return err
	}

	bench.PrintStats(stats)
	return nil
}

func runMySQL(conn bench.ConnConfig, params bench.StreamParams) error {
	printHeader("MySQL Batch Stream Benchmark", params)

	fmt.Println("[1/2] Connecting to MySQL...")
	db, err := my.Connect(conn)
	if err != nil {
		return err
	}
	defer db.Close()
	fmt.Println("  ✓ Connected")

	if params.SeedRows > 0 {
		fmt.Println("\n[2/2] Seeding test data...")
		if err := my.SeedData(db, params.SeedRows); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Println("  ✓ Data ready")
	}
	fmt.Println()

	stats, err := bench.RunMultiple(params.Runs, "MySQL Stream", func(run int) (bench.StreamStats, error) {
		stream, err := my.Open(context.Background(), db, params.Query, params.BatchSize)
		if err != nil {
			return bench.StreamStats{}, err
		}
		defer stream.Close()

		progress := bench.NewProgress(os.Stdout)
		res, err := bench.Consume(context.Background(), stream, progress)
		progress.Finish()
		if err != nil {
			return bench.StreamStats{}, err
		}
		return bench.ComputeStreamStats("MySQL Stream", res), nil
	})
	if err != nil {
		return err
	}

	bench.PrintStats(stats)
	return nil
}

func runClickHouse(conn bench.ConnConfig, params bench.StreamParams) error {
	printHeader("ClickHouse Batch Stream Benchmark", params)

	fmt.Println("[1/2] Connecting to ClickHouse...")
	db, err := ch.Connect(conn)
	if err != nil {
		return err
	}
	defer db.Close()
	fmt.Println("  ✓ Connected")

	if params.SeedRows > 0 {
		fmt.Println("\n[2/2] Seeding test data...")
		if err := ch.SeedData(db, params.SeedRows); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Println("  ✓ Data ready")
	}
	fmt.Println()

	stats, err := bench.RunMultiple(params.Runs, "ClickHouse Stream", func(run int) (bench.StreamStats, error) {
		stream, err := ch.Open(context.Background(), db, params.Query, params.BatchSize)
		if err != nil {
			return bench.StreamStats{}, err
		}
		defer stream.Close()

		progress := bench.NewProgress(os.Stdout)
		res, err := bench.Consume(context.Background(), stream, progress)
		progress.Finish()
		if err != nil {
			return bench.StreamStats{}, err
		}
		return bench.ComputeStreamStats("ClickHouse Stream", res), nil
	})
	if err != nil {
		return err
	}

	bench.PrintStats(stats)
	return nil
}
