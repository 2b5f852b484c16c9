package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thegambler1/qmdigital/errs"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map; once exceeded it is reset
const maxTrackedClients = 10000

// rateLimiter keeps one token bucket per client IP
type rateLimiter struct {
	limiters  map[string]*rate.Limiter
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	responder Responder
	logger    zerolog.Logger
}

// newRateLimiter allows perMinute requests per client with the given burst.
// A non-positive perMinute disables limiting.
func newRateLimiter(perMinute, burst int) *rateLimiter {
	logger := log.With().Str("handlerName", "rateLimiter").Logger()
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &rateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		rate:      limit,
		burst:     burst,
		responder: NewResponder(logger),
		logger:    logger,
	}
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

func (rl *rateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.rate == rate.Inf {
			next.ServeHTTP(w, r)
			return
		}

		key := clientIP(r)
		if !rl.getLimiter(key).Allow() {
			rl.logger.Warn().Str("client", key).Str("path", r.URL.Path).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "60")
			rl.responder.WriteError(w, errs.NewTooManyRequestsError("please try again later"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
