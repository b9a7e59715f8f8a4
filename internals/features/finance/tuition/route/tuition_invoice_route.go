// file: internals/features/finance/tuition/route/tuition_invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/finance/tuition/controller"
)

// TuitionInvoiceRoutes — CRUD tagihan untuk admin.
func TuitionInvoiceRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewTuitionInvoiceController(db)

	r := admin.Group("/tuition-invoices")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
}

// TuitionWebhookRoutes — endpoint publik untuk notifikasi Midtrans.
func TuitionWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTuitionInvoiceController(db)
	api.Post("/tuition-invoices/midtrans/webhook", ctl.HandleMidtransNotification)
}
