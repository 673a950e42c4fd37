package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds one token bucket per client IP. Entries idle
// longer than limiterIdleTTL are swept so the map stays bounded.
type rateLimiterStore struct {
	clients map[string]*clientLimiter
	mu      sync.Mutex
}

func newRateLimiterStore() *rateLimiterStore {
	return &rateLimiterStore{
		clients: make(map[string]*clientLimiter),
	}
}

var limiterStore = newRateLimiterStore()

func init() {
	go func() {
		for {
			time.Sleep(time.Minute)
			limiterStore.sweep(limiterIdleTTL)
		}
	}()
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.clients[ip]; ok {
		c.lastSeen = time.Now()
		return c.limiter
	}

	// 20 requests per minute with a burst of 5: plenty for a person
	// booking a haircut, hostile to scripts hammering public writes.
	limiter := rate.NewLimiter(rate.Every(time.Minute/20), 5)
	s.clients[ip] = &clientLimiter{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (s *rateLimiterStore) sweep(maxIdle time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ip, c := range s.clients {
		if time.Since(c.lastSeen) > maxIdle {
			delete(s.clients, ip)
		}
	}
}

// RateLimitMiddleware limits public write endpoints per client IP.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiterStore.getLimiter(ip).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limit_exceeded"})
			return
		}
		c.Next()
	}
}
