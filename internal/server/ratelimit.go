package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// newLimiter builds the limiter guarding the generation endpoints: perSec
// tokens refill each second, up to burst.
func newLimiter(perSec float64, burst int) *rate.Limiter {
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSec), burst)
}

// rateLimit rejects requests with 429 once the limiter has no tokens left
// at now(). A nil limiter lets everything through.
func rateLimit(l *rate.Limiter, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l != nil && !l.AllowN(now(), 1) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
