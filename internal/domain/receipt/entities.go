package receipt

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Method string

const (
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bank-transfer"
	MethodCheque       Method = "cheque"
	MethodOnline       Method = "online"
	MethodOther        Method = "other"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCheque, MethodOnline, MethodOther:
		return true
	}
	return false
}

type Purpose string

const (
	PurposeToken        Purpose = "token"
	PurposeDownPayment  Purpose = "down-payment"
	PurposeInstallment  Purpose = "installment"
	PurposeFinalPayment Purpose = "final-payment"
	PurposeOther        Purpose = "other"
)

func (p Purpose) Valid() bool {
	switch p {
	case PurposeToken, PurposeDownPayment, PurposeInstallment, PurposeFinalPayment, PurposeOther:
		return true
	}
	return false
}

var ErrNotFound = errors.New("receipt not found")

// Receipt is an immutable record of a single payment event.
type Receipt struct {
	ID            uint64         `gorm:"primaryKey;column:id" json:"-"`
	ReceiptID     string         `gorm:"size:32;uniqueIndex:ux_receipts_receipt_id" json:"receipt_id"`
	ReceiptNumber string         `gorm:"size:24;uniqueIndex:ux_receipts_number" json:"receipt_number"`
	Amount        float64        `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentDate   time.Time      `gorm:"type:date" json:"payment_date"`
	Method        Method         `gorm:"size:16" json:"payment_method"`
	Purpose       Purpose        `gorm:"size:16" json:"purpose"`
	ChequeNumber  string         `gorm:"size:32" json:"cheque_number,omitempty"`
	ChequeBank    string         `gorm:"size:64" json:"cheque_bank,omitempty"`
	ChequeDate    *time.Time     `gorm:"type:date" json:"cheque_date,omitempty"`
	TransferBank  string         `gorm:"size:64" json:"transfer_bank,omitempty"`
	TransferRef   string         `gorm:"size:64" json:"transfer_reference,omitempty"`
	TransactionID string         `gorm:"size:64" json:"transaction_id,omitempty"`
	PlanID        string         `gorm:"size:32;index" json:"plan_id,omitempty"`
	InstallmentID string         `gorm:"size:32;index" json:"installment_id,omitempty"`
	IssuedBy      string         `gorm:"size:32" json:"issued_by"`
	IssuedByName  string         `gorm:"size:128" json:"issued_by_name"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Receipt) TableName() string { return "payment_receipts" }

// FormatNumber builds a human-readable receipt number: RCP-YYMM-NNNN.
// seq is 1-based over all existing receipts; %04d widens past 9999 instead
// of wrapping, so numbers stay unique in months with heavy volume.
func FormatNumber(at time.Time, seq int64) string {
	return fmt.Sprintf("RCP-%02d%02d-%04d", at.Year()%100, int(at.Month()), seq)
}
