package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware counts requests per route and caller in fixed windows.
// Callers are identified by session user id when present, else client IP.
// A nil client disables limiting.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		caller := SessionUserID(c)
		if caller == "" {
			caller = c.ClientIP()
		}
		key := rateLimitKey(c.FullPath(), caller)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			// the limiter is best effort; never fail a request because redis is away
			log.Printf("rate limit check failed: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := redisClient.Expire(ctx, key, window).Err(); err != nil {
				// a counter without a TTL would never reset; drop it and let this request through
				log.Printf("rate limit expire failed: %v", err)
				redisClient.Del(ctx, key)
				c.Next()
				return
			}
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
				"code":  "RATE_LIMITED",
			})
			return
		}

		c.Next()
	}
}

func rateLimitKey(path, caller string) string {
	return fmt.Sprintf("rate_limit:%s:%s", path, caller)
}
