package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

const bucketIdleTTL = 10 * time.Minute

type rejectObserver interface {
	RateLimited(scope string)
}

// RateLimiter hands out per-minute token buckets keyed by scope and caller.
// Each named scope (auth, donations, ...) owns its buckets, so a caller
// exhausting one budget keeps the others.
type RateLimiter struct {
	buckets sync.Map // map[bucketKey]*bucket
	now     func() time.Time
	obs     rejectObserver
	stop    chan struct{}
	once    sync.Once
}

type bucketKey struct {
	scope  string
	caller string
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRejectObserver reports every rejected request by scope.
func WithRejectObserver(obs rejectObserver) RateLimiterOption {
	return func(rl *RateLimiter) { rl.obs = obs }
}

func withClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) { rl.now = now }
}

// NewRateLimiter creates a rate limiter that drops idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	for _, opt := range opts {
		opt(rl)
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per client IP within scope.
func (rl *RateLimiter) Limit(scope string, maxPerMinute int) Middleware {
	return rl.limit(scope, maxPerMinute, clientIP)
}

// LimitPerUser keys authenticated callers by user ID and anonymous ones by
// client IP, so users sharing a NAT keep separate budgets.
func (rl *RateLimiter) LimitPerUser(scope string, maxPerMinute int) Middleware {
	return rl.limit(scope, maxPerMinute, func(r *http.Request) string {
		if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
			return "user:" + id.String()
		}
		return "ip:" + clientIP(r)
	})
}

func (rl *RateLimiter) limit(scope string, maxPerMinute int, callerFn func(*http.Request) string) Middleware {
	limit := strconv.Itoa(maxPerMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucketFor(bucketKey{scope: scope, caller: callerFn(r)}, maxPerMinute)

			remaining, wait := b.take(rl.now())
			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if wait > 0 {
				if rl.obs != nil {
					rl.obs.RateLimited(scope)
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucketFor(key bucketKey, maxPerMinute int) *bucket {
	if b, ok := rl.buckets.Load(key); ok {
		return b.(*bucket)
	}

	capacity := float64(maxPerMinute)
	b, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     capacity,
		capacity:   capacity,
		perSecond:  capacity / 60,
		lastRefill: rl.now(),
	})
	return b.(*bucket)
}

// take refills the bucket up to now and consumes one token. It returns the
// tokens left and, when the bucket is empty, how long until the next token.
func (b *bucket) take(now time.Time) (int, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.lastRefill).Seconds(); elapsed > 0 {
		b.tokens = math.Min(b.capacity, b.tokens+elapsed*b.perSecond)
	}
	b.lastRefill = now

	if b.tokens < 1 {
		if b.perSecond <= 0 {
			return 0, time.Minute
		}
		deficit := (1 - b.tokens) / b.perSecond
		return 0, time.Duration(deficit * float64(time.Second))
	}

	b.tokens--
	return int(b.tokens), 0
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastRefill)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.buckets.Range(func(key, value any) bool {
		if value.(*bucket).idleSince(now) > bucketIdleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
