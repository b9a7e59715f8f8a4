// file: internals/features/people/teacher/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/people/teacher/controller"
)

// TeacherRoutes: lifecycle teacher, dipasang di group admin.
func TeacherRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherController(db)

	r := admin.Group("/teachers")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Update)
	r.Patch("/:id/archive", ctl.Archive)
	r.Patch("/:id/restore", ctl.Restore)
}
