package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"commute-assistant/pkg/response"
)

// RateLimit enforces a per-caller token bucket. The key is the authenticated
// user when Auth ran earlier in the chain, the client IP otherwise.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	if mw.cfg.PerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := ScopeFrom(c); ok {
			key = sc.UserID
		}

		if !mw.limiterFor(key).Allow() {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttling %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (mw Middleware) limiterFor(key string) *rate.Limiter {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	if lim, ok := mw.limiters.Get(key); ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(mw.cfg.PerSecond), mw.cfg.Burst)
	mw.limiters.Add(key, lim)
	return lim
}
