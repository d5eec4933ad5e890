package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/products-api/internal/core/port"
)

type Cache[T any] struct {
	client *Client
	prefix string
}

func NewCache[T any](client *Client, prefix string) port.CachePort[T] {
	return &Cache[T]{client: client, prefix: prefix}
}

func (c *Cache[T]) key(id string) string {
	return fmt.Sprintf("%s:%s", c.prefix, id)
}

// Get returns nil without error on a miss. An entry that no longer decodes
// into T is removed so the next read falls through to the store.
func (c *Cache[T]) Get(ctx context.Context, id string) (*T, error) {
	data, err := c.client.Get(ctx, c.key(id))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var value T
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		_ = c.client.Del(ctx, c.key(id))
		return nil, fmt.Errorf("cache: corrupt entry %s: %w", c.key(id), err)
	}
	return &value, nil
}

func (c *Cache[T]) Set(ctx context.Context, id string, value *T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(id), string(data), ttl)
}

func (c *Cache[T]) SetNX(ctx context.Context, id string, value *T, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	return c.client.SetNX(ctx, c.key(id), string(data), ttl)
}

func (c *Cache[T]) Del(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id))
}

// NoopCache never stores anything. SetNX always claims, so idempotency keys
// degrade to plain processing when Redis is disabled.
type NoopCache[T any] struct{}

func NewNoopCache[T any]() port.CachePort[T] {
	return NoopCache[T]{}
}

func (NoopCache[T]) Get(context.Context, string) (*T, error) {
	return nil, nil
}

func (NoopCache[T]) Set(context.Context, string, *T, time.Duration) error {
	return nil
}

func (NoopCache[T]) SetNX(context.Context, string, *T, time.Duration) (bool, error) {
	return true, nil
}

func (NoopCache[T]) Del(context.Context, string) error {
	return nil
}
