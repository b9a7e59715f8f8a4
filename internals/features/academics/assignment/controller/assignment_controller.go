// file: internals/features/academics/assignment/controller/assignment_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/academics/assignment/dto"
	model "sekolahku_backend/internals/features/academics/assignment/model"
	gradeModel "sekolahku_backend/internals/features/academics/grade/model"
	helper "sekolahku_backend/internals/helpers"
)

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

// POST /api/a/assignments
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}

	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	m := req.ToModel()
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&gradeModel.GradeModel{}).
			Where("grade_id = ?", req.AssignmentGradeID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			fe := helper.FieldErrors{}
			fe.Add("assignment_grade_id", "grade tidak ditemukan")
			return helper.NewValidationError(fe)
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		if ve, ok := helper.AsValidationError(err); ok {
			return helper.JsonValidationError(c, ve.Fields)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan assignment")
	}

	return helper.JsonCreated(c, "Assignment berhasil dibuat", m)
}

// PATCH /api/a/assignments/:id
func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}

	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	var m model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("assignment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if req.AssignmentGradeID != nil {
		var n int64
		if err := ctl.DB.WithContext(c.Context()).Model(&gradeModel.GradeModel{}).
			Where("grade_id = ?", *req.AssignmentGradeID).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		if n == 0 {
			fe := helper.FieldErrors{}
			fe.Add("assignment_grade_id", "grade tidak ditemukan")
			return helper.JsonValidationError(c, fe)
		}
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui assignment")
	}

	return helper.JsonUpdated(c, "Assignment berhasil diperbarui", m)
}

// PATCH /api/a/assignments/:id/archive
func (ctl *AssignmentController) Archive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("assignment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.AssignmentStatus == constants.StatusArchived {
		return helper.JsonOK(c, "Assignment sudah diarsip", m)
	}

	m.AssignmentStatus = constants.StatusArchived
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("assignment_status", constants.StatusArchived).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengarsip assignment")
	}

	return helper.JsonUpdated(c, "Assignment berhasil diarsip", m)
}

// PATCH /api/a/assignments/:id/restore
func (ctl *AssignmentController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("assignment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.AssignmentStatus == constants.StatusLive {
		return helper.JsonOK(c, "Assignment sudah live", m)
	}

	m.AssignmentStatus = constants.StatusLive
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("assignment_status", constants.StatusLive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore assignment")
	}

	return helper.JsonUpdated(c, "Assignment berhasil direstore", m)
}

// GET /api/a/assignments
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.AssignmentModel{})
	if status := c.Query("status"); status != "" {
		if !constants.IsPersonStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status filter tidak dikenal")
		}
		q = q.Where("assignment_status = ?", status)
	}
	if gradeID := c.Query("grade_id"); gradeID != "" {
		gid, err := uuid.Parse(gradeID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "grade_id tidak valid")
		}
		q = q.Where("assignment_grade_id = ?", gid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.AssignmentModel
	if err := q.Order("assignment_due_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/assignments/:id
func (ctl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("assignment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", m)
}
