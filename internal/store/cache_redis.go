package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/models"
)

// Verify interface compliance
var _ BinCache = (*RedisBinCache)(nil)

const binKeyPrefix = "fitsync:bin:"

// RedisBinCache implements [BinCache] on Redis. Bins are stored as JSON with
// the configured TTL.
type RedisBinCache struct {
	client *redis.Client
	ttl    time.Duration
}

// cachedBin is the JSON form of a bin in Redis.
type cachedBin struct {
	ID        string          `json:"id"`
	Owner     string          `json:"owner"`
	Name      string          `json:"name,omitempty"`
	Private   bool            `json:"private"`
	Record    json.RawMessage `json:"record"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewRedisBinCache wraps an existing client.
func NewRedisBinCache(client *redis.Client, ttl time.Duration) *RedisBinCache {
	return &RedisBinCache{client: client, ttl: ttl}
}

// ConnectRedisBinCache dials Redis from cfg and checks it with PING.
func ConnectRedisBinCache(ctx context.Context, cfg config.Cache) (*RedisBinCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddress, err)
	}
	return NewRedisBinCache(client, cfg.TTL), nil
}

func (c *RedisBinCache) Get(ctx context.Context, id string) (models.Bin, error) {
	data, err := c.client.Get(ctx, binKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Bin{}, ErrCacheMiss
	}
	if err != nil {
		return models.Bin{}, fmt.Errorf("get bin %s: %w", id, err)
	}

	var cb cachedBin
	if err = json.Unmarshal(data, &cb); err != nil {
		return models.Bin{}, fmt.Errorf("unmarshal bin %s: %w", id, err)
	}

	return models.Bin{
		ID:        cb.ID,
		Owner:     cb.Owner,
		Name:      cb.Name,
		Private:   cb.Private,
		Record:    cb.Record,
		CreatedAt: cb.CreatedAt,
		UpdatedAt: cb.UpdatedAt,
	}, nil
}

func (c *RedisBinCache) Set(ctx context.Context, bin models.Bin) error {
	data, err := json.Marshal(cachedBin{
		ID:        bin.ID,
		Owner:     bin.Owner,
		Name:      bin.Name,
		Private:   bin.Private,
		Record:    bin.Record,
		CreatedAt: bin.CreatedAt,
		UpdatedAt: bin.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal bin %s: %w", bin.ID, err)
	}

	if err = c.client.Set(ctx, binKeyPrefix+bin.ID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set bin %s: %w", bin.ID, err)
	}
	return nil
}

func (c *RedisBinCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, binKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete bin %s: %w", id, err)
	}
	return nil
}

// Ping checks if the Redis backend is healthy.
func (c *RedisBinCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisBinCache) Close() error {
	return c.client.Close()
}
