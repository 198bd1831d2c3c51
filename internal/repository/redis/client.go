package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iamasit07/connect4/internal/leaderboard"
)

const DefaultKeyPrefix = "connect4:leaderboard"

// NewClient connects to Redis and pings it so a bad address fails early.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// LeaderboardRepo keeps best scores in a hash and the player order in a list:
//
//	<prefix>:best   name -> score text
//	<prefix>:order  names in saved order
type LeaderboardRepo struct {
	client *redis.Client
	prefix string
}

func NewLeaderboardRepo(client *redis.Client, prefix string) *LeaderboardRepo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &LeaderboardRepo{client: client, prefix: prefix}
}

func (r *LeaderboardRepo) bestKey() string  { return r.prefix + ":best" }
func (r *LeaderboardRepo) orderKey() string { return r.prefix + ":order" }

// Load reads the saved order and the scores for it. Names without a score
// or with an unparseable one are skipped.
func (r *LeaderboardRepo) Load(ctx context.Context) ([]leaderboard.Record, error) {
	names, err := r.client.LRange(ctx, r.orderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard order: %w", err)
	}
	if len(names) == 0 {
		return nil, nil
	}

	values, err := r.client.HMGet(ctx, r.bestKey(), names...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard scores: %w", err)
	}

	records := make([]leaderboard.Record, 0, len(names))
	for i, name := range names {
		raw, ok := values[i].(string)
		if !ok {
			continue
		}
		best, err := leaderboard.ParseScore(raw)
		if err != nil {
			continue
		}
		records = append(records, leaderboard.Record{Name: name, Best: best})
	}
	return records, nil
}

// Save rewrites both keys inside MULTI/EXEC.
func (r *LeaderboardRepo) Save(ctx context.Context, records []leaderboard.Record) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.bestKey(), r.orderKey())
		if len(records) == 0 {
			return nil
		}

		fields := make([]interface{}, 0, 2*len(records))
		names := make([]interface{}, 0, len(records))
		for _, rec := range records {
			fields = append(fields, rec.Name, rec.Best.String())
			names = append(names, rec.Name)
		}
		pipe.HSet(ctx, r.bestKey(), fields...)
		pipe.RPush(ctx, r.orderKey(), names...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save leaderboard to redis: %w", err)
	}
	return nil
}
