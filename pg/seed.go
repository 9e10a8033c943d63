package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedData fills the samples table up to the requested row count so the
// stream benchmark has something to read.
func SeedData(pool *pgxpool.Pool, rows int) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS samples (
			id    bigserial PRIMARY KEY,
			x     double precision NOT NULL,
			y     double precision NOT NULL,
			z     double precision NOT NULL,
			r     int NOT NULL,
			g     int NOT NULL,
			b     int NOT NULL,
			label text NOT NULL,
			at    timestamptz NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM samples").Scan(&count); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count >= rows {
		fmt.Printf("  Data already seeded (%d rows)\n", count)
		return nil
	}

	fmt.Printf("  Seeding %d rows...\n", rows-count)
	_, err = pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO samples (x, y, z, r, g, b, label)
		SELECT random()*100, random()*100, random()*50,
		       (random()*255)::int, (random()*255)::int, (random()*255)::int,
		       'area' || (i %% 8)
		FROM generate_series(1, %d) i
	`, rows-count))
	return err
}
