package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per key. Call Stop on shutdown.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	stop     chan struct{}
	once     sync.Once
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter that evicts idle buckets every cleanupInterval.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		stop:     make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// PerIP limits each client IP to perMinute requests per minute.
func (rl *RateLimiter) PerIP(perMinute int) Middleware {
	limit := rate.Limit(float64(perMinute) / 60)
	return rl.limit("ip:", limit, perMinute, func(r *http.Request) string {
		if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
			return ip
		}
		return RealIP(r)
	})
}

// PerUser limits each authenticated user to perSecond with the given burst.
// Anonymous requests fall back to the client IP.
func (rl *RateLimiter) PerUser(perSecond float64, burst int) Middleware {
	return rl.limit("user:", rate.Limit(perSecond), burst, func(r *http.Request) string {
		if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
			return id.String()
		}
		return RealIP(r)
	})
}

func (rl *RateLimiter) limit(prefix string, limit rate.Limit, burst int, keyOf func(r *http.Request) string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := rl.limiter(prefix+keyOf(r), limit, burst).Reserve()
			if d := res.Delay(); !res.OK() || d > 0 {
				res.Cancel()
				retry := 60
				if res.OK() {
					retry = max(1, int(math.Ceil(d.Seconds())))
				}
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiter(key string, limit rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	e, ok := rl.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(limit, burst)}
		rl.limiters[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for key, e := range rl.limiters {
				if now.Sub(e.lastSeen) > limiterIdleTTL {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
