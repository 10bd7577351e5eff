package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// NewStrictRateLimiter throttles credential endpoints (login/register).
// One shared limiter for the process: sustained 5 requests a minute with
// a burst of 20 to leave room for normal usage spikes.
func NewStrictRateLimiter() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(12*time.Second), 20)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many attempts, try again shortly",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
