// file: internals/features/academics/assignment/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/assignment/controller"
)

func AssignmentRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAssignmentController(db)

	r := admin.Group("/assignments")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Update)
	r.Patch("/:id/archive", ctl.Archive)
	r.Patch("/:id/restore", ctl.Restore)
}
