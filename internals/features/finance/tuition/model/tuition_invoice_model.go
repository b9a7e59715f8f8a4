// file: internals/features/finance/tuition/model/tuition_invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status pembayaran tagihan SPP.
const (
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceFailed  = "failed"
	InvoiceExpired = "expired"
)

type TuitionInvoiceModel struct {
	TuitionInvoiceID uuid.UUID `gorm:"type:uuid;primaryKey;column:tuition_invoice_id" json:"tuition_invoice_id"`

	TuitionInvoiceStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:tuition_invoice_student_id" json:"tuition_invoice_student_id"`
	TuitionInvoiceTitle     string    `gorm:"type:varchar(160);not null;column:tuition_invoice_title" json:"tuition_invoice_title"`
	TuitionInvoiceAmount    int64     `gorm:"not null;column:tuition_invoice_amount" json:"tuition_invoice_amount"`

	// Order ID untuk Midtrans; unik, dipakai webhook untuk match
	TuitionInvoiceOrderID string `gorm:"type:varchar(64);not null;uniqueIndex;column:tuition_invoice_order_id" json:"tuition_invoice_order_id"`

	TuitionInvoiceSnapToken *string `gorm:"type:text;column:tuition_invoice_snap_token" json:"tuition_invoice_snap_token,omitempty"`
	TuitionInvoiceStatus    string  `gorm:"type:varchar(16);not null;default:'pending';column:tuition_invoice_status" json:"tuition_invoice_status"`

	TuitionInvoicePaidAt    *time.Time `gorm:"column:tuition_invoice_paid_at" json:"tuition_invoice_paid_at,omitempty"`
	TuitionInvoiceCreatedAt time.Time  `gorm:"column:tuition_invoice_created_at;not null;autoCreateTime" json:"tuition_invoice_created_at"`
	TuitionInvoiceUpdatedAt time.Time  `gorm:"column:tuition_invoice_updated_at;not null;autoUpdateTime" json:"tuition_invoice_updated_at"`
}

func (TuitionInvoiceModel) TableName() string { return "tuition_invoices" }

func (m *TuitionInvoiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.TuitionInvoiceID == uuid.Nil {
		m.TuitionInvoiceID = uuid.New()
	}
	return nil
}
