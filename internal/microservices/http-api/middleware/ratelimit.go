package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles the routes it guards with a single token bucket shared
// by all clients. Rejected requests get 429 and a Retry-After hint.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	limit := strconv.Itoa(limiter.Burst())

	return func(c *gin.Context) {
		c.Header("X-RateLimit-Limit", limit)

		if !limiter.Allow() {
			retryAfter := 1
			if l := float64(limiter.Limit()); l > 0 {
				retryAfter = int(math.Ceil(1 / l))
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
