// file: internals/features/finance/tuition/controller/tuition_invoice_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/tuition/dto"
	model "sekolahku_backend/internals/features/finance/tuition/model"
	service "sekolahku_backend/internals/features/finance/tuition/service"
	studentModel "sekolahku_backend/internals/features/people/student/model"
	helper "sekolahku_backend/internals/helpers"
)

type TuitionInvoiceController struct {
	DB *gorm.DB
}

func NewTuitionInvoiceController(db *gorm.DB) *TuitionInvoiceController {
	return &TuitionInvoiceController{DB: db}
}

// POST /api/a/tuition-invoices — buat tagihan SPP + Snap token
func (ctl *TuitionInvoiceController) Create(c *fiber.Ctx) error {
	var req dto.CreateTuitionInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}

	if fe := helper.ValidateStruct(&req); !fe.Empty() {
		return helper.JsonValidationError(c, fe)
	}

	var student studentModel.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_id = ?", req.TuitionInvoiceStudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fe := helper.FieldErrors{}
			fe.Add("tuition_invoice_student_id", "student tidak ditemukan")
			return helper.JsonValidationError(c, fe)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	inv := req.ToModel()

	if service.Enabled {
		token, err := service.GenerateSnapToken(inv, student.StudentName, student.StudentEmail)
		if err != nil {
			log.Println("[ERROR] Gagal membuat Snap token:", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat token pembayaran")
		}
		inv.TuitionInvoiceSnapToken = &token
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&inv).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tagihan")
	}

	return helper.JsonCreated(c, "Tagihan SPP berhasil dibuat", inv)
}

// GET /api/a/tuition-invoices
func (ctl *TuitionInvoiceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.TuitionInvoiceModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("tuition_invoice_status = ?", status)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		sid, err := uuid.Parse(studentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("tuition_invoice_student_id = ?", sid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.TuitionInvoiceModel
	if err := q.Order("tuition_invoice_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/tuition-invoices/:id
func (ctl *TuitionInvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var inv model.TuitionInvoiceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("tuition_invoice_id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", inv)
}

// POST /api/tuition-invoices/midtrans/webhook — notifikasi status dari Midtrans
func (ctl *TuitionInvoiceController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandleTuitionStatusWebhook(ctl.DB.WithContext(c.Context()), body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "ok", nil)
}
