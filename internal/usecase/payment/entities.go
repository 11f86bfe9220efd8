package payment

import "time"

type RecordPaymentInput struct {
	PlanID        string
	InstallmentID string
	Amount        float64
	PaymentDate   time.Time
	Method        string
	Notes         string
}

// PaymentDTO is the post-recording snapshot of the touched installment plus
// the recomputed plan status.
type PaymentDTO struct {
	PlanID        string     `json:"plan_id"`
	PlanStatus    string     `json:"plan_status"`
	InstallmentID string     `json:"installment_id"`
	Number        int        `json:"installment_number"`
	Amount        float64    `json:"amount"`
	PaidAmount    float64    `json:"paid_amount"`
	Outstanding   float64    `json:"outstanding"`
	Status        string     `json:"status"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
}

type NextDueDTO struct {
	InstallmentID string  `json:"installment_id"`
	Number        int     `json:"installment_number"`
	DueDate       string  `json:"due_date"`
	Amount        float64 `json:"amount"`
	Outstanding   float64 `json:"outstanding"`
	Status        string  `json:"status"`
}

// PlanStats aggregates a plan's payment progress. TotalPaid includes the
// down payment; CompletionPct is measured over the financed remainder only.
type PlanStats struct {
	PlanID           string      `json:"plan_id"`
	TotalPaid        float64     `json:"total_paid"`
	RemainingBalance float64     `json:"remaining_balance"`
	CompletionPct    float64     `json:"completion_pct"`
	Pending          int         `json:"pending"`
	Partial          int         `json:"partial"`
	Paid             int         `json:"paid"`
	Overdue          int         `json:"overdue"`
	NextDue          *NextDueDTO `json:"next_due,omitempty"`
}
