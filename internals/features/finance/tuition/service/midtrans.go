// file: internals/features/finance/tuition/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "sekolahku_backend/internals/features/finance/tuition/model"
)

var SnapClient snap.Client

// Enabled dipakai controller untuk skip pemanggilan Midtrans saat server key kosong.
var Enabled bool

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	if serverKey == "" {
		return
	}
	SnapClient.New(serverKey, midtrans.Sandbox)
	Enabled = true
}

// GenerateSnapToken membuat token Snap Midtrans untuk satu tagihan SPP.
func GenerateSnapToken(inv model.TuitionInvoiceModel, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.TuitionInvoiceOrderID,
			GrossAmt: inv.TuitionInvoiceAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       inv.TuitionInvoiceOrderID,
				Price:    inv.TuitionInvoiceAmount,
				Qty:      1,
				Name:     inv.TuitionInvoiceTitle,
				Category: "SPP",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
