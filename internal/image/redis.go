package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

// RedisCache shares fetched images between server instances.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "shohin:image:"
	}
	return &RedisCache{client: client, prefix: prefix, ttl: cfg.TTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, url string) (*Image, error) {
	val, err := c.client.Get(ctx, c.prefix+url).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	img, ok := decodeImage(val)
	if !ok {
		return nil, ErrCacheMiss
	}
	return img, nil
}

func (c *RedisCache) Set(ctx context.Context, url string, img *Image) error {
	if err := c.client.Set(ctx, c.prefix+url, encodeImage(img), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Stored values are the content type, a newline, then the raw body.
func encodeImage(img *Image) []byte {
	buf := make([]byte, 0, len(img.ContentType)+1+len(img.Data))
	buf = append(buf, img.ContentType...)
	buf = append(buf, '\n')
	return append(buf, img.Data...)
}

func decodeImage(val []byte) (*Image, bool) {
	i := bytes.IndexByte(val, '\n')
	if i < 0 {
		return nil, false
	}
	return &Image{ContentType: string(val[:i]), Data: val[i+1:]}, true
}
