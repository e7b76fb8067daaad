// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	helper "classmanager_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer token dan menyimpan identitas ke Locals.
// Tidak ada state sesi lain selain klaim di token.
func AuthMiddleware(tokens *helper.TokenIssuer, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := helper.ExtractBearerToken(c)
		if err != nil {
			log.WithField("path", c.Path()).Debugf("auth rejected: %v", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "No token, authorization denied")
		}

		caller, err := tokens.Parse(raw)
		if err != nil {
			log.WithField("path", c.Path()).WithError(err).Debug("token parse error")
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
		}

		helper.SetCaller(c, caller)
		return c.Next()
	}
}
