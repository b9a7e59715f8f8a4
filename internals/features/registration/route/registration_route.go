// file: internals/features/registration/route/registration_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/registration/controller"
	"sekolahku_backend/internals/middlewares"
)

// RegistrationRoutes: endpoint publik pendaftaran multi-role.
func RegistrationRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewRegistrationController(db)

	api.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	api.Get("/register/form", ctl.FormModel)
}
