// file: internals/features/people/teacher/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/people/teacher/dto"
	model "sekolahku_backend/internals/features/people/teacher/model"
	helper "sekolahku_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

/* ===============================
   CREATE
   POST /api/a/teachers
   =============================== */
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.TeacherPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hashing password")
	}

	m := req.ToModel(string(hash))
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan teacher")
	}

	return helper.JsonCreated(c, "Teacher berhasil dibuat", m)
}

/* ===============================
   UPDATE (partial)
   PATCH /api/a/teachers/:id
   =============================== */
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	var m model.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui teacher")
	}

	return helper.JsonUpdated(c, "Teacher berhasil diperbarui", m)
}

/* ===============================
   ARCHIVE / RESTORE — flip status saja, tidak pernah delete
   PATCH /api/a/teachers/:id/archive
   PATCH /api/a/teachers/:id/restore
   =============================== */
func (ctl *TeacherController) Archive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// Idempotent: sudah diarsip → kembalikan apa adanya.
	if m.TeacherStatus == constants.StatusArchived {
		return helper.JsonOK(c, "Teacher sudah diarsip", m)
	}

	m.TeacherStatus = constants.StatusArchived
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("teacher_status", constants.StatusArchived).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengarsip teacher")
	}

	return helper.JsonUpdated(c, "Teacher berhasil diarsip", m)
}

func (ctl *TeacherController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.TeacherStatus == constants.StatusLive {
		return helper.JsonOK(c, "Teacher sudah live", m)
	}

	m.TeacherStatus = constants.StatusLive
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("teacher_status", constants.StatusLive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore teacher")
	}

	return helper.JsonUpdated(c, "Teacher berhasil direstore", m)
}

/* ===============================
   READ
   GET /api/a/teachers        (?status=Live|Archived)
   GET /api/a/teachers/:id
   =============================== */
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.TeacherModel{})
	if status := c.Query("status"); status != "" {
		if !constants.IsPersonStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status filter tidak dikenal")
		}
		q = q.Where("teacher_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.TeacherModel
	if err := q.Order("teacher_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", m)
}
