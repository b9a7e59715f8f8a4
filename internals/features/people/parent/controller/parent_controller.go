// file: internals/features/people/parent/controller/parent_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/people/parent/dto"
	model "sekolahku_backend/internals/features/people/parent/model"
	helper "sekolahku_backend/internals/helpers"
)

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

// POST /api/a/parents
func (ctl *ParentController) Create(c *fiber.Ctx) error {
	var req dto.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.ParentPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hashing password")
	}

	m := req.ToModel(string(hash))
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan parent")
	}

	return helper.JsonCreated(c, "Parent berhasil dibuat", m)
}

// PATCH /api/a/parents/:id
func (ctl *ParentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	var m model.ParentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("parent_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui parent")
	}

	return helper.JsonUpdated(c, "Parent berhasil diperbarui", m)
}

// PATCH /api/a/parents/:id/archive
func (ctl *ParentController) Archive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ParentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("parent_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.ParentStatus == constants.StatusArchived {
		return helper.JsonOK(c, "Parent sudah diarsip", m)
	}

	m.ParentStatus = constants.StatusArchived
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("parent_status", constants.StatusArchived).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengarsip parent")
	}

	return helper.JsonUpdated(c, "Parent berhasil diarsip", m)
}

// PATCH /api/a/parents/:id/restore
func (ctl *ParentController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ParentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("parent_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.ParentStatus == constants.StatusLive {
		return helper.JsonOK(c, "Parent sudah live", m)
	}

	m.ParentStatus = constants.StatusLive
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("parent_status", constants.StatusLive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore parent")
	}

	return helper.JsonUpdated(c, "Parent berhasil direstore", m)
}

// GET /api/a/parents
func (ctl *ParentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.ParentModel{})
	if status := c.Query("status"); status != "" {
		if !constants.IsPersonStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status filter tidak dikenal")
		}
		q = q.Where("parent_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ParentModel
	if err := q.Order("parent_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/parents/:id
func (ctl *ParentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ParentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("parent_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", m)
}
