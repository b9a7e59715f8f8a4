// file: internals/features/academics/grade/controller/grade_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/academics/grade/dto"
	model "sekolahku_backend/internals/features/academics/grade/model"
	helper "sekolahku_backend/internals/helpers"
)

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

// POST /api/a/grades
func (ctl *GradeController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}

	fe := helper.ValidateStruct(&req)
	fe.Merge(req.ValidateName())
	if !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan grade")
	}

	return helper.JsonCreated(c, "Grade berhasil dibuat", m)
}

// PATCH /api/a/grades/:id
func (ctl *GradeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}

	fe := helper.ValidateStruct(&req)
	fe.Merge(req.ValidateName())
	if !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	var m model.GradeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("grade_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui grade")
	}

	return helper.JsonUpdated(c, "Grade berhasil diperbarui", m)
}

// PATCH /api/a/grades/:id/archive — token arsip grade: "Archive"
func (ctl *GradeController) Archive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.GradeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("grade_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.GradeStatus == constants.StatusArchive {
		return helper.JsonOK(c, "Grade sudah diarsip", m)
	}

	m.GradeStatus = constants.StatusArchive
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("grade_status", constants.StatusArchive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengarsip grade")
	}

	return helper.JsonUpdated(c, "Grade berhasil diarsip", m)
}

// PATCH /api/a/grades/:id/restore
func (ctl *GradeController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.GradeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("grade_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.GradeStatus == constants.StatusLive {
		return helper.JsonOK(c, "Grade sudah live", m)
	}

	m.GradeStatus = constants.StatusLive
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("grade_status", constants.StatusLive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore grade")
	}

	return helper.JsonUpdated(c, "Grade berhasil direstore", m)
}

// GET /api/a/grades
func (ctl *GradeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.GradeModel{})
	if status := c.Query("status"); status != "" {
		if !constants.IsAcademicStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status filter tidak dikenal")
		}
		q = q.Where("grade_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.GradeModel
	if err := q.Order("grade_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/grades/:id
func (ctl *GradeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.GradeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("grade_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", m)
}
