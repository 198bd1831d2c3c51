// Package repository picks the leaderboard backend named in the config.
package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4/internal/config"
	"github.com/iamasit07/connect4/internal/leaderboard"
	"github.com/iamasit07/connect4/internal/repository/file"
	"github.com/iamasit07/connect4/internal/repository/postgres"
	"github.com/iamasit07/connect4/internal/repository/redis"
	"github.com/iamasit07/connect4/internal/repository/sqlite"
)

// Open returns the configured repository and a function releasing whatever
// connection it holds. When Redis cannot be reached the file repository is
// used instead, the same way the server used to run without its cache.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (leaderboard.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.LeaderboardBackend {
	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite leaderboard: %w", err)
		}
		logger.Info().Str("path", cfg.SQLitePath).Msg("using sqlite leaderboard")
		return sqlite.NewRepo(db), db.Close, nil

	case config.BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, noop, fmt.Errorf("postgres leaderboard needs DATABASE_URL")
		}
		db, err := postgres.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			return nil, noop, err
		}
		if err := postgres.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("migration failed: %w", err)
		}
		logger.Info().Msg("using postgres leaderboard")
		return postgres.NewLeaderboardRepo(db), db.Close, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err == nil {
			logger.Info().Str("addr", cfg.RedisURL).Msg("using redis leaderboard")
			return redis.NewLeaderboardRepo(client, cfg.RedisKeyPrefix), client.Close, nil
		}
		logger.Warn().Err(err).Str("path", cfg.LeaderboardFile).Msg("redis unavailable, falling back to file leaderboard")
	}

	logger.Debug().Str("path", cfg.LeaderboardFile).Msg("using file leaderboard")
	return file.NewRepo(cfg.LeaderboardFile), noop, nil
}
