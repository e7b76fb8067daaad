// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	controller "classmanager_backend/internals/features/users/auth/controller"
	"classmanager_backend/internals/features/users/auth/service"
	helper "classmanager_backend/internals/helpers"
	rateLimiter "classmanager_backend/internals/middlewares"
)

// AuthRoutes: /api/auth. rateLimit=false dipakai di test supaya limiter tidak ikut campur.
func AuthRoutes(api fiber.Router, db *gorm.DB, tokens *helper.TokenIssuer, log *logrus.Logger, protect fiber.Handler, rateLimit bool) {
	authController := controller.NewAuthController(service.NewAuthService(db, tokens, log), log)

	loginLimiter, registerLimiter := rateLimiter.Passthrough(), rateLimiter.Passthrough()
	if rateLimit {
		loginLimiter = rateLimiter.LoginRateLimiter()
		registerLimiter = rateLimiter.RegisterRateLimiter()
	}

	baseAuth := api.Group("/auth")

	// 🔓 Public
	baseAuth.Post("/register", registerLimiter, authController.Register)
	baseAuth.Post("/login", loginLimiter, authController.Login)

	// 🔐 Protected
	baseAuth.Get("/me", protect, authController.Me)
	baseAuth.Put("/me", protect, authController.UpdateMe)
	baseAuth.Delete("/me", protect, authController.DeleteMe)
	baseAuth.Post("/change-password", protect, authController.ChangePassword)
}
