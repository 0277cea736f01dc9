package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request from key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter holds a token bucket per client IP in process.
type MemoryLimiter struct {
	limiters map[string]*rate.Limiter
	perMin   int
	mu       sync.Mutex
}

func NewMemoryLimiter(perMin int) *MemoryLimiter {
	if perMin <= 0 {
		perMin = 10
	}
	return &MemoryLimiter{limiters: make(map[string]*rate.Limiter), perMin: perMin}
}

// Allow refills perMin tokens a minute with a burst of perMin.
func (s *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)
		s.limiters[key] = limiter
	}
	return limiter.Allow(), nil
}

// RedisLimiter counts requests per key in a one-minute fixed window shared by
// every server instance.
type RedisLimiter struct {
	client *redis.Client
	perMin int
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, perMin int) *RedisLimiter {
	if perMin <= 0 {
		perMin = 10
	}
	return &RedisLimiter{client: client, perMin: perMin, now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := l.now().Unix() / 60
	rkey := fmt.Sprintf("ratelimit:%s:%d", key, window)

	// INCR and EXPIRE go out in one transaction so a window key can never
	// outlive its minute.
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, rkey)
		pipe.Expire(ctx, rkey, time.Minute)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= int64(l.perMin), nil
}

// RateLimitMiddleware limits requests per IP address. Limiter errors let the
// request through.
func RateLimitMiddleware(l Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		ok, err := l.Allow(c.Request.Context(), ip)
		if err != nil {
			logger.Warn("Rate limiter unavailable", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
