// file: internals/route/setup.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	assignmentRoute "sekolahku_backend/internals/features/academics/assignment/route"
	gradeRoute "sekolahku_backend/internals/features/academics/grade/route"
	subjectRoute "sekolahku_backend/internals/features/academics/subject/route"
	authRoute "sekolahku_backend/internals/features/auth/route"
	tuitionRoute "sekolahku_backend/internals/features/finance/tuition/route"
	parentRoute "sekolahku_backend/internals/features/people/parent/route"
	studentRoute "sekolahku_backend/internals/features/people/student/route"
	teacherRoute "sekolahku_backend/internals/features/people/teacher/route"
	registrationRoute "sekolahku_backend/internals/features/registration/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	api := app.Group("/api")
	registrationRoute.RegistrationRoutes(api, db)
	authRoute.AuthRoutes(api, db, cfg)
	tuitionRoute.TuitionWebhookRoutes(api, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              cfg.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles(constants.RoleAdmin),
	)

	teacherRoute.TeacherRoutes(admin, db)
	parentRoute.ParentRoutes(admin, db)
	studentRoute.StudentRoutes(admin, db)
	subjectRoute.SubjectRoutes(admin, db)
	gradeRoute.GradeRoutes(admin, db)
	assignmentRoute.AssignmentRoutes(admin, db)
	tuitionRoute.TuitionInvoiceRoutes(admin, db)
}
