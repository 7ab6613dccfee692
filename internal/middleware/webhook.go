package middleware

import (
	"crypto/subtle"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// TelegramSecretHeader carries the secret_token registered with setWebhook.
const TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookConfig guards an inbound webhook route.
type WebhookConfig struct {
	// Secret must match TelegramSecretHeader; empty disables the check.
	Secret string
	// AllowedIPs lists addresses or CIDR ranges; empty allows any source.
	AllowedIPs []string
	// RatePerMinute limits requests per source IP; 0 disables limiting.
	RatePerMinute int
}

// Webhook rejects requests with a wrong secret (401), from a source outside
// AllowedIPs (403) or above the per-source rate (429).
func (mw Middleware) Webhook(cfg WebhookConfig) gin.HandlerFunc {
	var limiter *rateLimiter
	if cfg.RatePerMinute > 0 {
		limiter = newRateLimiter(cfg.RatePerMinute)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if cfg.Secret != "" {
			got := c.GetHeader(TelegramSecretHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(cfg.Secret)) != 1 {
				mw.l.Warnf(ctx, "middleware.Webhook: invalid secret token from %s", extractIP(c.Request))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
				return
			}
		}

		ip := extractIP(c.Request)
		if err := validateIP(ip, cfg.AllowedIPs); err != nil {
			mw.l.Warnf(ctx, "middleware.Webhook: %v", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		if limiter != nil {
			if err := limiter.Allow(ip); err != nil {
				mw.l.Warnf(ctx, "middleware.Webhook: %v", err)
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
				return
			}
		}

		c.Next()
	}
}

func validateIP(ip string, allowed []string) error {
	if len(allowed) == 0 {
		return nil
	}
	parsed := net.ParseIP(ip)
	for _, a := range allowed {
		if ip == a {
			return nil
		}
		if strings.Contains(a, "/") {
			_, ipNet, err := net.ParseCIDR(a)
			if err != nil {
				continue
			}
			if parsed != nil && ipNet.Contains(parsed) {
				return nil
			}
		}
	}
	return fmt.Errorf("IP %s not allowed", ip)
}

// extractIP prefers proxy headers over the socket address.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimiter keeps one token bucket per source and forgets idle sources.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(perMinute int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(perMinute) / 60.0),
		burst:    max(1, perMinute/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
