package receipt

import (
	"time"

	domain "aaraazi-backend/internal/domain/receipt"
)

type IssueReceiptInput struct {
	Amount       float64
	PaymentDate  time.Time
	Method       domain.Method
	Purpose      domain.Purpose
	ChequeNumber string
	ChequeBank   string
	ChequeDate   *time.Time
	TransferBank string
	TransferRef  string
	// TransactionID is the gateway reference for online payments.
	TransactionID string
	PlanID        string
	InstallmentID string
	IssuedBy      string
	IssuedByName  string
	Notes         string
}

type ReceiptDTO struct {
	ReceiptID     string    `json:"receipt_id"`
	ReceiptNumber string    `json:"receipt_number"`
	Amount        float64   `json:"amount"`
	PaymentDate   string    `json:"payment_date"`
	Method        string    `json:"payment_method"`
	Purpose       string    `json:"purpose"`
	PlanID        string    `json:"plan_id,omitempty"`
	InstallmentID string    `json:"installment_id,omitempty"`
	IssuedBy      string    `json:"issued_by"`
	IssuedByName  string    `json:"issued_by_name"`
	CreatedAt     time.Time `json:"created_at"`
}

func toDTO(r *domain.Receipt) *ReceiptDTO {
	return &ReceiptDTO{
		ReceiptID:     r.ReceiptID,
		ReceiptNumber: r.ReceiptNumber,
		Amount:        r.Amount,
		PaymentDate:   r.PaymentDate.Format("2006-01-02"),
		Method:        string(r.Method),
		Purpose:       string(r.Purpose),
		PlanID:        r.PlanID,
		InstallmentID: r.InstallmentID,
		IssuedBy:      r.IssuedBy,
		IssuedByName:  r.IssuedByName,
		CreatedAt:     r.CreatedAt,
	}
}
