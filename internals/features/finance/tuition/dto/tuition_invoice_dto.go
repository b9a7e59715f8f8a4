// file: internals/features/finance/tuition/dto/tuition_invoice_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/finance/tuition/model"
)

type CreateTuitionInvoiceRequest struct {
	TuitionInvoiceStudentID uuid.UUID `json:"tuition_invoice_student_id" validate:"required"`
	TuitionInvoiceTitle     string    `json:"tuition_invoice_title" validate:"required,max=160"`
	TuitionInvoiceAmount    int64     `json:"tuition_invoice_amount" validate:"required,gt=0"`
}

func (r CreateTuitionInvoiceRequest) ToModel() model.TuitionInvoiceModel {
	return model.TuitionInvoiceModel{
		TuitionInvoiceStudentID: r.TuitionInvoiceStudentID,
		TuitionInvoiceTitle:     strings.TrimSpace(r.TuitionInvoiceTitle),
		TuitionInvoiceAmount:    r.TuitionInvoiceAmount,
		TuitionInvoiceOrderID:   newOrderID(),
		TuitionInvoiceStatus:    model.InvoicePending,
	}
}

// newOrderID membentuk order id unik untuk Midtrans: SPP-<unix-nano>-<suffix uuid>.
func newOrderID() string {
	return fmt.Sprintf("SPP-%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
}
