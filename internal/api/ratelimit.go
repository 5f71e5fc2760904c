package api

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/config"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

// Clients idle longer than this lose their bucket.
const limiterIdleEviction = 10 * time.Minute

// RateLimiter dispenses one token bucket per client address
// ⭐ SSOT: inbound request throttling happens here and nowhere else.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
	logger  *logger.Logger
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter from config and starts the idle-entry
// janitor for the life of the process.
func NewRateLimiter(cfg *config.Config, log *logger.Logger) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
		burst:   cfg.RateLimit.Burst,
		logger:  log,
	}

	go rl.janitor()

	return rl
}

func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for addr, c := range rl.clients {
			if time.Since(c.lastSeen) > limiterIdleEviction {
				delete(rl.clients, addr)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) allow(addr string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[addr]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[addr] = c
	}
	c.lastSeen = time.Now()

	return c.limiter.Allow()
}

// Middleware rejects requests above the per-client budget with 429.
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !rl.allow(host) {
				rl.logger.WithFields(map[string]interface{}{
					"client": host,
					"path":   r.URL.Path,
				}).Warn("Request rate limited")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
