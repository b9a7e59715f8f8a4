// file: internals/features/academics/subject/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/subject/controller"
)

func SubjectRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	r := admin.Group("/subjects")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Update)
	r.Patch("/:id/archive", ctl.Archive)
	r.Patch("/:id/restore", ctl.Restore)
}
