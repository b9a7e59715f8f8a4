// file: internals/features/people/student/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	gradeModel "sekolahku_backend/internals/features/academics/grade/model"
	parentModel "sekolahku_backend/internals/features/people/parent/model"
	dto "sekolahku_backend/internals/features/people/student/dto"
	model "sekolahku_backend/internals/features/people/student/model"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.StudentPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hashing password")
	}

	m := req.ToModel(string(hash))

	// Cek referensi + insert dalam satu transaksi.
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&parentModel.ParentModel{}).
			Where("parent_id = ?", req.StudentParentID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Parent tidak ditemukan")
		}

		if err := tx.Model(&gradeModel.GradeModel{}).
			Where("grade_id = ?", req.StudentGradeID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Grade tidak ditemukan")
		}

		return tx.Create(&m).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan student")
	}

	return helper.JsonCreated(c, "Student berhasil dibuat", m)
}

// PATCH /api/a/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	var m model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui student")
	}

	return helper.JsonUpdated(c, "Student berhasil diperbarui", m)
}

// PATCH /api/a/students/:id/archive
func (ctl *StudentController) Archive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.StudentStatus == constants.StatusArchived {
		return helper.JsonOK(c, "Student sudah diarsip", m)
	}

	m.StudentStatus = constants.StatusArchived
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("student_status", constants.StatusArchived).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengarsip student")
	}

	return helper.JsonUpdated(c, "Student berhasil diarsip", m)
}

// PATCH /api/a/students/:id/restore
func (ctl *StudentController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.StudentStatus == constants.StatusLive {
		return helper.JsonOK(c, "Student sudah live", m)
	}

	m.StudentStatus = constants.StatusLive
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).Update("student_status", constants.StatusLive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merestore student")
	}

	return helper.JsonUpdated(c, "Student berhasil direstore", m)
}

// GET /api/a/students  (?status=, ?grade_id=, ?parent_id=)
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.StudentModel{})
	if status := c.Query("status"); status != "" {
		if !constants.IsPersonStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status filter tidak dikenal")
		}
		q = q.Where("student_status = ?", status)
	}
	if gradeID := c.Query("grade_id"); gradeID != "" {
		gid, err := uuid.Parse(gradeID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "grade_id tidak valid")
		}
		q = q.Where("student_grade_id = ?", gid)
	}
	if parentID := c.Query("parent_id"); parentID != "" {
		pid, err := uuid.Parse(parentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "parent_id tidak valid")
		}
		q = q.Where("student_parent_id = ?", pid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.StudentModel
	if err := q.Order("student_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", m)
}
