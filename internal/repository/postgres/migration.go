package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migration/schema.sql
var schema string

// RunMigrations creates the leaderboard table if it does not exist yet
func RunMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to execute schema.sql: %w", err)
	}
	return nil
}
