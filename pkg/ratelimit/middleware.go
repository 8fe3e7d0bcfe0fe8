package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"driveline/pkg/metrics"
)

// Config tunes the coarse per-IP token bucket that fronts the whole API. The
// submission quota in pkg/quota is separate and much tighter.
type Config struct {
	RPS             float64
	Burst           int
	CleanupInterval time.Duration
	MaxAge          time.Duration
}

func DefaultConfig() Config {
	return Config{
		RPS:             10.0,
		Burst:           20,
		CleanupInterval: 5 * time.Minute,
		MaxAge:          10 * time.Minute,
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	mu       sync.Mutex
}

type registry struct {
	cfg      Config
	mu       sync.RWMutex
	limiters map[string]*clientLimiter
}

func (r *registry) get(ip string) *clientLimiter {
	r.mu.RLock()
	l, ok := r.limiters[ip]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok = r.limiters[ip]; ok {
		return l
	}
	l = &clientLimiter{
		limiter:  rate.NewLimiter(rate.Limit(r.cfg.RPS), r.cfg.Burst),
		lastSeen: time.Now(),
	}
	r.limiters[ip] = l
	return l
}

func (r *registry) sweep() {
	ticker := time.NewTicker(r.cfg.CleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for ip, l := range r.limiters {
			l.mu.Lock()
			lastSeen := l.lastSeen
			l.mu.Unlock()
			if now.Sub(lastSeen) > r.cfg.MaxAge {
				delete(r.limiters, ip)
			}
		}
		r.mu.Unlock()
	}
}

func Middleware(cfg Config) gin.HandlerFunc {
	reg := &registry{
		cfg:      cfg,
		limiters: make(map[string]*clientLimiter),
	}

	go reg.sweep()

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.RemoteIP()
		}

		l := reg.get(clientIP)

		l.mu.Lock()
		l.lastSeen = time.Now()
		l.mu.Unlock()

		if !l.limiter.Allow() {
			metrics.RateLimitRequestsTotal.WithLabelValues("limited").Inc()
			c.Header("Retry-After", "1")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "Too many requests. Please slow down and try again.",
				"error_code": "RATE_LIMITED",
			})
			c.Abort()
			return
		}

		metrics.RateLimitRequestsTotal.WithLabelValues("allowed").Inc()
		c.Header("X-RateLimit-Limit", strconv.Itoa(int(cfg.RPS)))

		c.Next()
	}
}
