package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/config"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/pkg/ctxutil"
)

// RateLimiter applies a token bucket per client. Authenticated requests are
// keyed by owner id, anonymous ones by remote IP. Idle clients are evicted
// after IdleTTL and at most MaxClients buckets are kept.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	clients *expirable.LRU[string, *rate.Limiter]
	now     func() time.Time
}

// NewRateLimiter creates a limiter from config. A zero RequestsPerMinute
// yields a limiter whose middleware lets everything through.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(cfg.RequestsPerMinute, 1)
	}
	return &RateLimiter{
		limit:   rate.Limit(float64(cfg.RequestsPerMinute) / 60),
		burst:   burst,
		clients: expirable.NewLRU[string, *rate.Limiter](max(cfg.MaxClients, 1), nil, cfg.IdleTTL),
		now:     time.Now,
	}
}

// Limit returns middleware enforcing the configured rate.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		if rl.limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ok, retryAfter := rl.allow(clientKey(r)); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// allow takes one token for key. When the bucket is empty it reports the
// number of whole seconds until the next token.
func (rl *RateLimiter) allow(key string) (bool, int) {
	lim, ok := rl.clients.Get(key)
	if !ok {
		lim = rate.NewLimiter(rl.limit, rl.burst)
	}
	// Add refreshes the idle TTL.
	rl.clients.Add(key, lim)

	now := rl.now()
	res := lim.ReserveN(now, 1)
	if !res.OK() {
		return false, 60
	}
	delay := res.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	res.CancelAt(now)
	return false, int(math.Ceil(delay.Seconds()))
}

func clientKey(r *http.Request) string {
	if ownerID, ok := ctxutil.OwnerIDFromCtx(r.Context()); ok {
		return "owner:" + ownerID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
