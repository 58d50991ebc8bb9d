package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// LoginRateLimit bounds login attempts per client IP to blunt credential
// stuffing. Limiters idle for an hour are dropped on the next sweep.
func LoginRateLimit(perMinute, burst int) fiber.Handler {
	type entry struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu        sync.Mutex
		entries   = make(map[string]*entry)
		lastSweep = time.Now()
	)

	limit := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *fiber.Ctx) error {
		mu.Lock()
		now := time.Now()

		if now.Sub(lastSweep) > time.Hour {
			for ip, e := range entries {
				if now.Sub(e.lastSeen) > time.Hour {
					delete(entries, ip)
				}
			}
			lastSweep = now
		}

		ip := c.IP()
		e, ok := entries[ip]
		if !ok {
			e = &entry{limiter: rate.NewLimiter(limit, burst)}
			entries[ip] = e
		}
		e.lastSeen = now
		allowed := e.limiter.Allow()
		mu.Unlock()

		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "too many attempts, please try again later",
			})
		}

		return c.Next()
	}
}
