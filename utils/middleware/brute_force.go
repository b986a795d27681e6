package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/utils/cache"
	"github.com/studytrack/studytrack-api/utils/response"
)

// BruteForceProtection locks out IPs with repeated failed logins. A nil
// instance is a no-op so the API runs without Redis.
type BruteForceProtection struct {
	redisCache *cache.RedisCache
}

// NewBruteForceProtection creates a new brute force protection instance
func NewBruteForceProtection(redisCache *cache.RedisCache) *BruteForceProtection {
	if redisCache == nil {
		return nil
	}
	return &BruteForceProtection{
		redisCache: redisCache,
	}
}

func attemptKey(ip string) string { return fmt.Sprintf("brute_force:attempts:%s", ip) }
func lockKey(ip string) string    { return fmt.Sprintf("brute_force:lock:%s", ip) }

// CheckLockout middleware rejects requests from a locked out IP
func (b *BruteForceProtection) CheckLockout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if b == nil {
			return c.Next()
		}

		key := lockKey(c.IP())
		locked, err := b.redisCache.Exists(c.UserContext(), key)
		if err != nil {
			// Redis being down must not block legitimate users
			return c.Next()
		}

		if locked {
			ttl, _ := b.redisCache.TTL(c.UserContext(), key)
			retryAfter := int(ttl.Seconds())
			if retryAfter < 0 {
				retryAfter = 60
			}

			c.Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			return response.TooManyRequests(c, fmt.Sprintf("Too many failed attempts. Try again in %d seconds", retryAfter))
		}

		return c.Next()
	}
}

// RecordFailedAttempt records a failed login attempt and applies progressive lockouts
func (b *BruteForceProtection) RecordFailedAttempt(c *fiber.Ctx) {
	if b == nil {
		return
	}
	ctx := c.UserContext()
	ip := c.IP()

	attempts, err := b.redisCache.Increment(ctx, attemptKey(ip))
	if err != nil {
		return
	}

	// 15 minute counting window
	if attempts == 1 {
		_ = b.redisCache.Expire(ctx, attemptKey(ip), 15*time.Minute)
	}

	var lockDuration time.Duration
	switch {
	case attempts >= 25:
		lockDuration = 24 * time.Hour
	case attempts >= 10:
		lockDuration = time.Hour
	case attempts >= 5:
		lockDuration = 2 * time.Minute
	default:
		return
	}

	_ = b.redisCache.Set(ctx, lockKey(ip), "locked", lockDuration)
}

// RecordSuccessfulAttempt clears failed attempts on successful login
func (b *BruteForceProtection) RecordSuccessfulAttempt(c *fiber.Ctx) {
	if b == nil {
		return
	}
	_ = b.redisCache.Delete(c.UserContext(), attemptKey(c.IP()), lockKey(c.IP()))
}
