// file: internals/features/registration/controller/registration_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/registration/dto"
	"sekolahku_backend/internals/features/registration/form"
	"sekolahku_backend/internals/features/registration/service"
	helper "sekolahku_backend/internals/helpers"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

/* ===============================
   REGISTER
   POST /api/register
   =============================== */
func (ctl *RegistrationController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}

	created, err := service.Register(ctl.DB.WithContext(c.Context()), &req)
	if err != nil {
		if ve, ok := helper.AsValidationError(err); ok {
			return helper.JsonValidationError(c, ve.Fields)
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil", created)
}

/* ===============================
   FORM MODEL
   GET /api/register/form?role=teacher
   =============================== */
func (ctl *RegistrationController) FormModel(c *fiber.Ctx) error {
	role := c.Query("role", constants.RoleStudent)

	f, err := form.Seeded(role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	body := fiber.Map{
		"role": f.Role(),
		"common_fields": []string{
			"name", "email", "mobile", "password",
			"residential_address.address", "residential_address.city",
			"residential_address.state", "residential_address.country",
			"residential_address.zip_code",
		},
	}
	switch f.Role() {
	case constants.RoleTeacher:
		body["qualification"] = ""
		body["grade_subjects"] = f.GradeSubjects
	case constants.RoleStudent:
		body["parent_id"] = ""
		body["grade_id"] = ""
		body["subjects"] = f.Subjects
	}

	return helper.JsonOK(c, "ok", body)
}
