package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/configs"
)

// SetupMiddlewares memasang middleware dasar aplikasi.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(cfg.CORSAllowOrigins))
	app.Use(GlobalRateLimiter())
}
