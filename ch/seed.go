package ch

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedData fills the samples table up to the requested row count, generated
// server-side from system.numbers.
func SeedData(db *sql.DB, rows int) error {
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS samples (
			id    UInt64,
			x     Float64,
			y     Float64,
			z     Float64,
			r     UInt8,
			g     UInt8,
			b     UInt8,
			label String,
			at    DateTime
		) ENGINE = MergeTree ORDER BY id
	`)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	var count uint64
	if err := db.QueryRowContext(ctx, "SELECT count() FROM samples").Scan(&count); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count >= uint64(rows) {
		fmt.Printf("  Data already seeded (%d rows)\n", count)
		return nil
	}

	fmt.Printf("  Seeding %d rows...\n", uint64(rows)-count)
	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO samples
		SELECT
			number,
			randCanonical()*100, randCanonical()*100, randCanonical()*50,
			rand() %% 256, rand() %% 256, rand() %% 256,
			concat('area', toString(number %% 8)),
			now()
		FROM system.numbers LIMIT %d
	`, uint64(rows)-count))
	return err
}
