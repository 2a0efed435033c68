package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

const (
	// KeyObjectURL caches a resolved retrieval URL per bucket/key pair
	KeyObjectURL = "media:url:%s:%s"
)

type urlCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.URLCache = (*urlCache)(nil)

// NewURLCache caches resolved object URLs for ttl. The ttl must stay below
// the lifetime of the presigned URLs themselves, otherwise the cache would
// serve links that already expired.
func NewURLCache(client *redis.Client, ttl time.Duration) *urlCache {
	return &urlCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *urlCache) GetURL(ctx context.Context, bucket, key string) (string, error) {
	cacheKey := fmt.Sprintf(KeyObjectURL, bucket, key)
	url, err := c.client.Get(ctx, cacheKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrCacheMiss
	} else if err != nil {
		return "", err
	}
	return url, nil
}

func (c *urlCache) SetURL(ctx context.Context, bucket, key, url string) error {
	cacheKey := fmt.Sprintf(KeyObjectURL, bucket, key)
	return c.client.Set(ctx, cacheKey, url, c.ttl).Err()
}
