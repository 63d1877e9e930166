package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	TTLPublishedPage = 5 * time.Minute  // published block projection per page
	TTLPageList      = 10 * time.Minute // distinct page list (changes rarely)
	TTLFaqs          = 10 * time.Minute
	TTLEvents        = 2 * time.Minute
)

// Cache key prefixes
const (
	PrefixPublishedPage = "content:page:"
	PrefixPageList      = "content:pages"
	PrefixFaqs          = "faqs"
	PrefixEvents        = "events:upcoming"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Service is the Redis cache facade used by read-heavy endpoints.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// Published content projection per page
	InvalidatePublishedPage(ctx context.Context, page string) error
	InvalidatePageList(ctx context.Context) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis-backed cache implementation
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	if c.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return c.client.Ping(ctx).Err() == nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) InvalidatePublishedPage(ctx context.Context, page string) error {
	return c.client.Del(ctx, PrefixPublishedPage+page).Err()
}

func (c *redisCache) InvalidatePageList(ctx context.Context) error {
	return c.client.Del(ctx, PrefixPageList).Err()
}
