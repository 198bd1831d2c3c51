package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/iamasit07/connect4/internal/leaderboard"
)

const schema = `
CREATE TABLE IF NOT EXISTS leaderboard (
    position INTEGER NOT NULL,
    name     TEXT PRIMARY KEY,
    best     REAL NOT NULL CHECK (best > 0)
);`

// Open opens (and creates if missing) the SQLite file at path and makes
// sure the leaderboard table exists.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// one writer at a time is all SQLite can do anyway
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create leaderboard table: %w", err)
	}
	return db, nil
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Load(ctx context.Context) ([]leaderboard.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, best FROM leaderboard ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var records []leaderboard.Record
	for rows.Next() {
		var rec leaderboard.Record
		var best float64
		if err := rows.Scan(&rec.Name, &best); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		rec.Best = leaderboard.Score(best)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *Repo) Save(ctx context.Context, records []leaderboard.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard`); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO leaderboard (position, name, best) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, i, rec.Name, float64(rec.Best)); err != nil {
			return fmt.Errorf("insert %q: %w", rec.Name, err)
		}
	}
	return tx.Commit()
}
