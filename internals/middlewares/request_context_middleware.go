package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "classmanager_backend/internals/helpers"
)

// RequestContext memberi Request-ID dan context ber-timeout yang diteruskan ke query DB.
func RequestContext(timeout time.Duration) fiber.Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(helper.LocRequestID, id)

		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
