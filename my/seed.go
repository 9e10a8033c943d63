package my

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
)

// SeedData fills the samples table up to the requested row count.
// Inserts go in chunks of 500 to stay under max_allowed_packet.
func SeedData(db *sql.DB, rows int) error {
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS samples (
			id    BIGINT AUTO_INCREMENT PRIMARY KEY,
			x     DOUBLE NOT NULL,
			y     DOUBLE NOT NULL,
			z     DOUBLE NOT NULL,
			r     INT NOT NULL,
			g     INT NOT NULL,
			b     INT NOT NULL,
			label VARCHAR(32) NOT NULL,
			at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM samples").Scan(&count); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count >= rows {
		fmt.Printf("  Data already seeded (%d rows)\n", count)
		return nil
	}

	fmt.Printf("  Seeding %d rows...\n", rows-count)

	chunk := 500
	for i := count; i < rows; i += chunk {
		end := i + chunk
		if end > rows {
			end = rows
		}

		query := "INSERT INTO samples (x, y, z, r, g, b, label) VALUES "
		vals := make([]interface{}, 0, (end-i)*7)
		for j := i; j < end; j++ {
			if j > i {
				query += ","
			}
			query += "(?,?,?,?,?,?,?)"
			vals = append(vals,
				rand.Float64()*100, rand.Float64()*100, rand.Float64()*50,
				rand.Intn(256), rand.Intn(256), rand.Intn(256),
				fmt.Sprintf("area%d", j%8))
		}

		if _, err := db.ExecContext(ctx, query, vals...); err != nil {
			return fmt.Errorf("seed chunk at %d: %w", i, err)
		}
	}
	return nil
}
