package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	MaxAuthAttemptsPerHour = 30
	RateLimitWindow        = time.Hour
)

// RateLimiter throttles the unauthenticated auth endpoints per client IP
// with a Redis sliding window.
type RateLimiter struct {
	redis *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{redis: client}
}

// Limit is a gin middleware. A nil Redis client disables limiting entirely.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.redis == nil {
			c.Next()
			return
		}

		allowed, resetAt, err := rl.check(c, c.ClientIP())
		if err != nil {
			// Redis being down should not lock everyone out.
			log.Printf("rate limiter check failed: %v", err)
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many attempts, try again later",
				"resetAt": resetAt.UTC().Format(time.RFC3339),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) check(c *gin.Context, clientIP string) (allowed bool, resetAt time.Time, err error) {
	ctx := c.Request.Context()
	key := fmt.Sprintf("rate_limit:auth:%s", clientIP)
	now := time.Now()
	windowStart := now.Add(-RateLimitWindow)

	if _, err := rl.redis.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.Unix())).Result(); err != nil {
		return false, time.Time{}, err
	}

	count, err := rl.redis.ZCard(ctx, key).Result()
	if err != nil {
		return false, time.Time{}, err
	}

	oldest, err := rl.redis.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil {
		return false, time.Time{}, err
	}
	if len(oldest) > 0 {
		resetAt = time.Unix(int64(oldest[0].Score), 0).Add(RateLimitWindow)
	} else {
		resetAt = now.Add(RateLimitWindow)
	}

	if count >= MaxAuthAttemptsPerHour {
		return false, resetAt, nil
	}

	if _, err := rl.redis.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.Unix()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	}).Result(); err != nil {
		return false, resetAt, err
	}
	if _, err := rl.redis.Expire(ctx, key, RateLimitWindow*2).Result(); err != nil {
		return false, resetAt, err
	}

	return true, resetAt, nil
}
