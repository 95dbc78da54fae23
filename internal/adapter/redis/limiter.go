// Package redis provides a request limiter shared across server replicas.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const defaultPrefix = "ratelimit:"

// Limiter counts requests per key in fixed one-minute windows.
type Limiter struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewLimiter connects to the Redis server at redisURL and pings it.
func NewLimiter(ctx context.Context, redisURL string) (*Limiter, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewLimiterWithClient(client), nil
}

// NewLimiterWithClient wraps an existing client.
func NewLimiterWithClient(client *goredis.Client) *Limiter {
	return &Limiter{client: client, prefix: defaultPrefix, now: time.Now}
}

// Allow records one request for key and reports whether it fits in the
// current minute's budget of maxPerMinute.
func (l *Limiter) Allow(ctx context.Context, key string, maxPerMinute int) (bool, error) {
	window := l.now().Unix() / 60
	k := l.prefix + key + ":" + strconv.FormatInt(window, 10)

	var incr *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.Expire(ctx, k, 2*time.Minute)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis limiter %s: %w", key, err)
	}

	return incr.Val() <= int64(maxPerMinute), nil
}

// Ping checks connectivity.
func (l *Limiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (l *Limiter) Close() error {
	return l.client.Close()
}
