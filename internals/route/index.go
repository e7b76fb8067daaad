// file: internals/routes/setup.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	helper "classmanager_backend/internals/helpers"
	rateLimiter "classmanager_backend/internals/middlewares"
	authMiddleware "classmanager_backend/internals/middlewares/auth"
	routeDetails "classmanager_backend/internals/route/details"
)

// Deps: semua yang dibutuhkan route. Dibangun sekali di main (atau di test).
type Deps struct {
	DB        *gorm.DB
	Log       *logrus.Logger
	Tokens    *helper.TokenIssuer
	RateLimit bool
}

var startTime time.Time

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.DB)

	// ===================== API =====================
	globalLimiter := rateLimiter.Passthrough()
	if d.RateLimit {
		globalLimiter = rateLimiter.GlobalRateLimiter()
	}
	api := app.Group("/api", globalLimiter)
	protect := authMiddleware.AuthMiddleware(d.Tokens, d.Log)

	d.Log.Debug("mounting auth routes")
	routeDetails.AuthRoutes(api, d.DB, d.Tokens, d.Log, protect, d.RateLimit)

	d.Log.Debug("mounting class routes")
	routeDetails.ClassRoutes(api, d.DB, d.Log, protect)

	d.Log.Debug("mounting student routes")
	routeDetails.UserRoutes(api, d.DB, d.Log, protect)
}
