// file: internals/features/academics/grade/route/grade_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/grade/controller"
)

func GradeRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewGradeController(db)

	r := admin.Group("/grades")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Update)
	r.Patch("/:id/archive", ctl.Archive)
	r.Patch("/:id/restore", ctl.Restore)
}
