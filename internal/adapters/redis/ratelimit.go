package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/products-api/internal/adapters/http/middleware"
)

// Fixed window counter. Returns the count and the milliseconds left in the window.
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) middleware.RateLimiter {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (middleware.RateLimitResult, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)
	values, err := rateLimitScript.Run(ctx, r.client.rdb, []string{redisKey}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return middleware.RateLimitResult{}, err
	}
	if len(values) != 2 {
		return middleware.RateLimitResult{}, fmt.Errorf("ratelimit: unexpected script result %v", values)
	}

	count := int(values[0])
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return middleware.RateLimitResult{
		Allowed:    count <= limit,
		Limit:      limit,
		Remaining:  remaining,
		ResetAfter: time.Duration(values[1]) * time.Millisecond,
	}, nil
}
