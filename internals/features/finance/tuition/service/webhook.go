// file: internals/features/finance/tuition/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/finance/tuition/model"
)

// HandleTuitionStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
func HandleTuitionStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	var inv model.TuitionInvoiceModel
	if err := db.Where("tuition_invoice_order_id = ?", orderID).First(&inv).Error; err != nil {
		log.Println("[ERROR] Tagihan tidak ditemukan:", err)
		return fmt.Errorf("invoice with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		inv.TuitionInvoiceStatus = model.InvoicePaid
		inv.TuitionInvoicePaidAt = &now
	case "expire":
		inv.TuitionInvoiceStatus = model.InvoiceExpired
	case "cancel", "deny":
		inv.TuitionInvoiceStatus = model.InvoiceFailed
	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	if err := db.Save(&inv).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status tagihan:", err)
		return err
	}

	return nil
}
