// file: internals/features/people/student/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/people/student/controller"
)

func StudentRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	r := admin.Group("/students")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Update)
	r.Patch("/:id/archive", ctl.Archive)
	r.Patch("/:id/restore", ctl.Restore)
}
