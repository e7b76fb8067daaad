package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"classmanager_backend/internals/configs"
	middlewares "classmanager_backend/internals/middlewares"
)

// NewApp merakit fiber.App lengkap (middleware + routes). main dan test memakai fungsi yang sama.
func NewApp(cfg configs.Config, d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          middlewares.ErrorHandler(d.Log),
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	middlewares.SetupMiddlewares(app, cfg)
	SetupRoutes(app, d)
	return app
}
