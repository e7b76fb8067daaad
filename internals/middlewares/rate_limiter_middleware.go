package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "classmanager_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, "Too many requests, please try again later")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newLimiter(10, time.Minute, "Too many login attempts, please try again shortly")
}

// Rate limiter untuk register route
func RegisterRateLimiter() fiber.Handler {
	return newLimiter(5, 5*time.Minute, "Too many registration attempts, please wait a few minutes")
}

// Passthrough dipakai saat rate limit dimatikan (mis. di test).
func Passthrough() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.Next() }
}
