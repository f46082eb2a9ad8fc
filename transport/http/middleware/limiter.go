package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"alloggi/shared/constant"
	"alloggi/transport/http/response"
)

// ipLimiter keeps one token bucket per client address. Buckets are never
// evicted; the stub serves a handful of clients at most.
type ipLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     float64
	burst   int
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	if rps <= 0 {
		rps = 10
	}

	if burst <= 0 {
		burst = 20
	}

	return &ipLimiter{
		buckets: make(map[string]*rate.Limiter),
		rps:     rps,
		burst:   burst,
	}
}

func (l *ipLimiter) get(clientIP string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[clientIP]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.buckets[clientIP] = bucket
	}

	return bucket
}

func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)

			return
		}

		bucket := a.limiter.get(a.getClientIP(r))

		if !bucket.Allow() {
			response.WithRequestLimitExceeded(w)

			return
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(a.limiter.burst))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(int(bucket.Tokens())))

		next.ServeHTTP(w, r)
	})
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
