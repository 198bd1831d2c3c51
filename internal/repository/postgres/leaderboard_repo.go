package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iamasit07/connect4/internal/leaderboard"
)

type LeaderboardRepo struct {
	DB *sql.DB
}

func NewLeaderboardRepo(db *sql.DB) *LeaderboardRepo {
	return &LeaderboardRepo{DB: db}
}

// Load returns every stored record in saved order
func (r *LeaderboardRepo) Load(ctx context.Context) ([]leaderboard.Record, error) {
	query := `SELECT name, best FROM leaderboard ORDER BY position ASC;`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	records := make([]leaderboard.Record, 0)
	for rows.Next() {
		var name string
		var best float64
		if err := rows.Scan(&name, &best); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		records = append(records, leaderboard.Record{Name: name, Best: leaderboard.Score(best)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}
	return records, nil
}

// Save replaces the whole table in one transaction
func (r *LeaderboardRepo) Save(ctx context.Context, records []leaderboard.Record) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard;`); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	query := `INSERT INTO leaderboard (position, name, best) VALUES ($1, $2, $3);`
	for i, rec := range records {
		if _, err := tx.ExecContext(ctx, query, i, rec.Name, float64(rec.Best)); err != nil {
			return fmt.Errorf("failed to insert leaderboard record %q: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
