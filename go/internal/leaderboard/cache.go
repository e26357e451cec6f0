package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a cached table may lag behind the database
const DefaultTTL = 5 * time.Minute

// LeagueKey is the cache key of a league table
func LeagueKey(leagueID uuid.UUID) string {
	return "leaderboard:league:" + leagueID.String()
}

// SeasonKey is the cache key of a season table
func SeasonKey(seasonID uuid.UUID) string {
	return "leaderboard:season:" + seasonID.String()
}

// RedisClient is the subset of redis.Cmdable the cache uses
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCache stores ranked tables as JSON strings
type RedisCache struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisCache creates a cache whose entries expire after ttl
func NewRedisCache(client RedisClient, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the table stored under key. A miss is not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]models.LeaderboardEntry, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return entries, true, nil
}

// Set stores a table under key
func (c *RedisCache) Set(ctx context.Context, key string, entries []models.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete drops keys
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete leaderboard keys: %w", err)
	}
	return nil
}
