// file: internals/features/academics/subject/controller/subject_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/academics/subject/dto"
	model "sekolahku_backend/internals/features/academics/subject/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// POST /api/a/subjects
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan subject")
	}

	return helper.JsonCreated(c, "Subject berhasil dibuat", m)
}

// PATCH /api/a/subjects/:id
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}

	fe := helper.ValidateStruct(&req)
	fe.Merge(req.ValidateName())
	if !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	var m model.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui subject")
	}

	return helper.JsonUpdated(c, "Subject berhasil diperbarui", m)
}

// PATCH /api/a/subjects/:id/archive — token arsip subject: "Archive"
func (ctl *SubjectController) Archive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.SubjectStatus == constants.StatusArchive {
		return helper.JsonOK(c, "Subject sudah diarsip", m)
	}

	m.SubjectStatus = constants.StatusArchive
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("subject_status", constants.StatusArchive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengarsip subject")
	}

	return helper.JsonUpdated(c, "Subject berhasil diarsip", m)
}

// PATCH /api/a/subjects/:id/restore
func (ctl *SubjectController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.SubjectStatus == constants.StatusLive {
		return helper.JsonOK(c, "Subject sudah live", m)
	}

	m.SubjectStatus = constants.StatusLive
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("subject_status", constants.StatusLive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore subject")
	}

	return helper.JsonUpdated(c, "Subject berhasil direstore", m)
}

// GET /api/a/subjects
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.SubjectModel{})
	if status := c.Query("status"); status != "" {
		if !constants.IsAcademicStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status filter tidak dikenal")
		}
		q = q.Where("subject_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.SubjectModel
	if err := q.Order("subject_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/subjects/:id
func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", m)
}
