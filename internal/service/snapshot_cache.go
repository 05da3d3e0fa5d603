package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Redis key prefixes for derived view-models
	DashboardKeyPrefix = "dashboard:snapshot:"
	ReportKeyPrefix    = "reports:snapshot:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second

	// Keys deleted per pipeline when invalidating a prefix
	invalidateBatchSize = 500
)

// =============================================================================
// Types
// =============================================================================

// SnapshotCache stores JSON encoded view-models for a short time so repeated
// dashboard and report reads skip the repositories.
type SnapshotCache interface {
	// Get decodes the cached value into dest and reports whether it was found
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// Invalidate removes every key starting with prefix
	Invalidate(ctx context.Context, prefix string) error
}

type redisSnapshotCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

// NewRedisSnapshotCache creates a cache whose entries expire after ttl
func NewRedisSnapshotCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) SnapshotCache {
	return &redisSnapshotCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *redisSnapshotCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A snapshot written by an older build is treated as a miss
		c.log.Warnf("Failed to decode cached snapshot %s: %+v", key, err)
		return false, nil
	}
	return true, nil
}

func (c *redisSnapshotCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	c.log.Debugf("Cached snapshot %s for %v", key, c.ttl)
	return nil
}

// Invalidate scans for the prefix and deletes matches in batches, one pipeline per batch
func (c *redisSnapshotCache) Invalidate(ctx context.Context, prefix string) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	iter := c.redisClient.Scan(ctx, 0, prefix+"*", invalidateBatchSize).Iterator()
	batch := make([]string, 0, invalidateBatchSize)
	deleted := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		pipe := c.redisClient.TxPipeline()
		pipe.Del(ctx, batch...)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("redis delete %s*: %w", prefix, err)
		}
		deleted += len(batch)
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == invalidateBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan %s*: %w", prefix, err)
	}
	if err := flush(); err != nil {
		return err
	}

	c.log.Debugf("Invalidated %d snapshots with prefix %s", deleted, prefix)
	return nil
}

// noopSnapshotCache is used when Redis is disabled. Every read is a miss.
type noopSnapshotCache struct{}

func NewNoopSnapshotCache() SnapshotCache {
	return noopSnapshotCache{}
}

func (noopSnapshotCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopSnapshotCache) Set(context.Context, string, any) error         { return nil }
func (noopSnapshotCache) Invalidate(context.Context, string) error       { return nil }

// DashboardKey identifies the dashboard snapshot of one calendar day
func DashboardKey(day time.Time) string {
	return DashboardKeyPrefix + day.Format("2006-01-02")
}

// ReportKey identifies the report snapshot of one range
func ReportKey(reportRange string) string {
	return ReportKeyPrefix + reportRange
}
