// file: internals/features/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/auth/controller"
	"sekolahku_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, cfg configs.Config) {
	ctl := controller.NewAuthController(db, cfg)

	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/logout", ctl.Logout)
}
