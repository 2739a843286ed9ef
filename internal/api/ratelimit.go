/**
 * @description
 * This file implements a Redis-backed fixed-window rate limiter applied
 * to analysis submissions. The limiter fails open: a missing client or a
 * Redis error never blocks the request path.
 */
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

// RateLimiter counts requests per user in a fixed window.
type RateLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int
	window time.Duration
}

// NewRateLimiter creates a limiter. A nil client disables limiting.
func NewRateLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration) *RateLimiter {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = "styleadvisor:rate_limit"
	}
	return &RateLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

// Allow reports whether the subject may proceed and, when blocked, how
// many seconds to wait.
func (l *RateLimiter) Allow(ctx context.Context, scope, subject string) (bool, int) {
	if l == nil || l.client == nil || l.limit <= 0 || l.window <= 0 {
		return true, 0
	}

	key := fmt.Sprintf("%s:%s:%s", l.prefix, scope, subject)
	res, err := rateLimitScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Slice()
	if err != nil || len(res) != 2 {
		// Fail open: limiting is protection, not correctness.
		log.Printf("Rate limit check failed for %s: %v", key, err)
		return true, 0
	}

	count, _ := res[0].(int64)
	ttlMs, _ := res[1].(int64)
	if int(count) <= l.limit {
		return true, 0
	}

	retryAfter := int((time.Duration(ttlMs) * time.Millisecond).Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	return false, retryAfter
}

// Middleware applies the limiter to a route group, keyed by the
// authenticated user.
func (l *RateLimiter) Middleware(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			allowed, retryAfter := l.Allow(r.Context(), scope, userID)
			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
