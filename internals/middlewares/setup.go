package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"

	"classmanager_backend/internals/configs"
	"classmanager_backend/internals/middlewares/logger"
	"classmanager_backend/internals/middlewares/metrics"
)

// SetupMiddlewares memasang middleware global. Urutan: recover paling luar.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(metrics.PrometheusMiddleware())
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
}
