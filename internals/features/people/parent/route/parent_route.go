// file: internals/features/people/parent/route/parent_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/people/parent/controller"
)

func ParentRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewParentController(db)

	r := admin.Group("/parents")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Update)
	r.Patch("/:id/archive", ctl.Archive)
	r.Patch("/:id/restore", ctl.Restore)
}
