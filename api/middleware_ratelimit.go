package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/greencycle/wastehub/token"
)

// RateLimiterConfig holds the per-IP and per-user rate limits
type RateLimiterConfig struct {
	IPRateLimit  rate.Limit
	IPBurstLimit int

	UserRateLimit  rate.Limit
	UserBurstLimit int

	// Stale limiters older than this are dropped
	CleanupInterval time.Duration
}

// DefaultRateLimiterConfig returns the standard limits
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		IPRateLimit:     10,
		IPBurstLimit:    20,
		UserRateLimit:   20,
		UserBurstLimit:  50,
		CleanupInterval: 10 * time.Minute,
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter tracks token buckets per visitor
type RateLimiter struct {
	config   RateLimiterConfig
	visitors map[string]*visitor
	mu       sync.RWMutex
	stopCh   chan struct{}
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		visitors: make(map[string]*visitor),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupVisitors()

	return rl
}

func (rl *RateLimiter) getVisitor(key string, rateLimit rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(rateLimit, burst)
		rl.visitors[key] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for key, v := range rl.visitors {
				if time.Since(v.lastSeen) > rl.config.CleanupInterval*3 {
					delete(rl.visitors, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

// Stop stops the cleanup loop
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware limits by user id when authenticated, otherwise by client IP
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var key string
		var rateLimit rate.Limit
		var burst int

		if payload, exists := ctx.Get(authorizationPayloadKey); exists {
			userPayload := payload.(*token.Payload)
			key = "user:" + strconv.FormatInt(userPayload.UserID, 10)
			rateLimit = rl.config.UserRateLimit
			burst = rl.config.UserBurstLimit
		} else {
			key = "ip:" + ctx.ClientIP()
			rateLimit = rl.config.IPRateLimit
			burst = rl.config.IPBurstLimit
		}

		limiter := rl.getVisitor(key, rateLimit, burst)

		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "rate limit exceeded, please slow down",
			})
			return
		}

		ctx.Next()
	}
}

// SensitiveAPIMiddleware applies a stricter per-minute budget. Used for
// registration, login and payment endpoints.
func (rl *RateLimiter) SensitiveAPIMiddleware(ratePerMinute int) gin.HandlerFunc {
	sensitiveVisitors := make(map[string]*visitor)
	var mu sync.RWMutex

	return func(ctx *gin.Context) {
		key := "sensitive:" + ctx.ClientIP()

		mu.Lock()
		v, exists := sensitiveVisitors[key]
		if !exists {
			limiter := rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60.0), ratePerMinute)
			sensitiveVisitors[key] = &visitor{limiter: limiter, lastSeen: time.Now()}
			v = sensitiveVisitors[key]
		}
		v.lastSeen = time.Now()
		mu.Unlock()

		if !v.limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "too many requests for this operation, please try again later",
			})
			return
		}

		ctx.Next()
	}
}
