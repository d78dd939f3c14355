package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second

	exportKeyPrefix = "export:"
)

var (
	ErrDisabled = errors.New("cache disabled")
	ErrNotFound = errors.New("key not found")
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client:  client,
		enabled: true,
	}, nil
}

func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

// operationContext creates a context with timeout for Redis operations
func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

// SetString stores value without encoding.
func (c *Cache) SetString(key, value string, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Set(ctx, key, value, expiration).Err()
}

// GetString returns the raw value stored at key.
func (c *Cache) GetString(key string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	} else if err != nil {
		return "", err
	}
	return val, nil
}

func (c *Cache) DeletePattern(pattern string) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// ExportKey derives the cache key of a rendered export from the serialised
// document, so any change to the document selects a different entry.
func ExportKey(format string, document []byte) string {
	sum := sha256.Sum256(document)
	return exportKeyPrefix + format + ":" + hex.EncodeToString(sum[:])
}

// CacheExport stores a rendered export.
func (c *Cache) CacheExport(key, body string, ttl time.Duration) error {
	return c.SetString(key, body, ttl)
}

// GetCachedExport returns a rendered export if present.
func (c *Cache) GetCachedExport(key string) (string, bool) {
	body, err := c.GetString(key)
	if err != nil {
		return "", false
	}
	return body, true
}

// InvalidateExports drops every cached export.
func (c *Cache) InvalidateExports() error {
	return c.DeletePattern(exportKeyPrefix + "*")
}
