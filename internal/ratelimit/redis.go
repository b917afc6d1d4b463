package ratelimit

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"
)

// slidingWindowScript prunes, counts and conditionally appends in one step,
// so concurrent checks for a client cannot both take the last slot.
//
// KEYS[1] window key. ARGV: now ms, window ms, limit, member.
// Returns {allowed, remaining, retry_after_ms}.
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
if count >= limit then
  local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
  local retry = window
  if oldest[2] then
    retry = tonumber(oldest[2]) + window - now
  end
  return {0, 0, retry}
end

redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return {1, limit - count - 1, 0}
`)

// Redis is a sliding-window limiter stored in one sorted set per client.
// Client ids are hashed before they become keys.
type Redis struct {
	rdb    redis.Scripter
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

type RedisOption func(*Redis)

func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) { r.prefix = strings.Trim(prefix, ":") }
}

func WithRedisClock(now func() time.Time) RedisOption {
	return func(r *Redis) { r.now = now }
}

// NewRedis returns a shared limiter backed by rdb.
func NewRedis(rdb redis.Scripter, limit int, window time.Duration, opts ...RedisOption) *Redis {
	r := &Redis{
		rdb:    rdb,
		prefix: "palette:ratelimit",
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the Redis key holding the window for clientID.
func (r *Redis) Key(clientID string) string {
	sum := blake2b.Sum256([]byte(clientID))
	return r.prefix + ":" + hex.EncodeToString(sum[:16])
}

// Allow runs the window script for key.
func (r *Redis) Allow(ctx context.Context, key string) (Decision, error) {
	now := r.now().UnixMilli()
	res, err := slidingWindowScript.Run(ctx, r.rdb,
		[]string{r.Key(key)},
		now, r.window.Milliseconds(), r.limit, uuid.NewString(),
	).Int64Slice()
	if err != nil {
		MetricBackendErrors.Inc()
		return Decision{}, fmt.Errorf("ratelimit: redis check: %w", err)
	}
	if len(res) != 3 {
		MetricBackendErrors.Inc()
		return Decision{}, fmt.Errorf("ratelimit: unexpected script reply %v", res)
	}
	return Decision{
		Allowed:    res[0] == 1,
		Remaining:  int(res[1]),
		RetryAfter: time.Duration(res[2]) * time.Millisecond,
	}, nil
}
