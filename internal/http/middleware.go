package http

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"habit-tracker-go/internal/tracker"
)

// IdentityMiddleware resolves the acting user and stores it in the context as
// "user" and "userID". There is no authentication: every request acts as the
// default account.
func IdentityMiddleware(svc *tracker.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.DefaultUser(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)

		c.Next()
	}
}

// maxLimiters caps the per-client table; it is reset when exceeded.
const maxLimiters = 10000

type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func (rl *rateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxLimiters {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// RateLimit throttles each client IP to rps requests per second with the
// given burst. A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	rl := &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
	return func(c *gin.Context) {
		if !rl.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(429, gin.H{"error": "rate_limited"})
			return
		}
		c.Next()
	}
}
