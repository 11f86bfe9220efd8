package plan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyBiAnnual  Frequency = "bi-annual"
	FrequencyAnnual    Frequency = "annual"
	FrequencyCustom    Frequency = "custom"
)

// MonthStep returns the due-date step in months for calendar frequencies.
// ok is false for the custom frequency, where supplied dates are used verbatim.
func (f Frequency) MonthStep() (step int, ok bool) {
	switch f {
	case FrequencyMonthly:
		return 1, true
	case FrequencyQuarterly:
		return 3, true
	case FrequencyBiAnnual:
		return 6, true
	case FrequencyAnnual:
		return 12, true
	}
	return 0, false
}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyBiAnnual, FrequencyAnnual, FrequencyCustom:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPartial InstallmentStatus = "partial"
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentOverdue InstallmentStatus = "overdue"
)

var (
	ErrNotFound            = errors.New("plan not found")
	ErrInstallmentNotFound = errors.New("installment not found")
)

type Plan struct {
	ID                   uint64         `gorm:"primaryKey;column:id" json:"-"`
	PlanID               string         `gorm:"size:32;uniqueIndex:ux_plans_plan_id_active" json:"plan_id"`
	SaleCycleID          string         `gorm:"size:32;index" json:"sale_cycle_id"`
	PropertyID           string         `gorm:"size:32;index:idx_plans_property" json:"property_id"`
	BuyerID              string         `gorm:"size:32;index:idx_plans_buyer" json:"buyer_id"`
	BuyerName            string         `gorm:"size:128" json:"buyer_name"`
	TotalAmount          float64        `gorm:"type:decimal(18,2)" json:"total_amount"`
	DownPayment          float64        `gorm:"type:decimal(18,2)" json:"down_payment"`
	RemainingAmount      float64        `gorm:"type:decimal(18,2)" json:"remaining_amount"`
	InstallmentAmount    float64        `gorm:"type:decimal(18,2)" json:"installment_amount"`
	NumberOfInstallments int            `json:"number_of_installments"`
	Frequency            Frequency      `gorm:"size:16" json:"frequency"`
	StartDate            time.Time      `gorm:"type:date" json:"start_date"`
	Status               Status         `gorm:"size:16;default:'active'" json:"status"`
	Installments         []Installment  `gorm:"foreignKey:PlanRef;references:ID" json:"installments"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Plan) TableName() string { return "installment_plans" }

type Installment struct {
	ID            uint64            `gorm:"primaryKey;column:id" json:"-"`
	InstallmentID string            `gorm:"size:32;uniqueIndex:ux_installments_installment_id" json:"installment_id"`
	PlanRef       uint64            `gorm:"column:plan_ref;index" json:"-"`
	Number        int               `gorm:"column:installment_number" json:"installment_number"`
	DueDate       time.Time         `gorm:"type:date" json:"due_date"`
	Amount        float64           `gorm:"type:decimal(18,2)" json:"amount"`
	PaidAmount    float64           `gorm:"type:decimal(18,2)" json:"paid_amount"`
	Status        InstallmentStatus `gorm:"size:16;default:'pending'" json:"status"`
	PaidDate      *time.Time        `gorm:"type:date" json:"paid_date,omitempty"`
	PaymentMethod string            `gorm:"size:16" json:"payment_method,omitempty"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	ReceiptID     string            `gorm:"size:32" json:"receipt_id,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Installment) TableName() string { return "installments" }

// Outstanding is the amount still owed on this installment (never negative).
func (i *Installment) Outstanding() float64 {
	if i.PaidAmount >= i.Amount {
		return 0
	}
	return i.Amount - i.PaidAmount
}

// RecomputeStatus re-derives status from paidAmount. An installment with no
// payments keeps its current status (pending or overdue stays as-is).
func (i *Installment) RecomputeStatus() {
	switch {
	case i.PaidAmount >= i.Amount:
		i.Status = InstallmentPaid
	case i.PaidAmount > 0:
		i.Status = InstallmentPartial
	}
}

// RecomputeStatus marks the plan completed iff every installment is paid.
func (p *Plan) RecomputeStatus() {
	for i := range p.Installments {
		if p.Installments[i].Status != InstallmentPaid {
			p.Status = StatusActive
			return
		}
	}
	p.Status = StatusCompleted
}

// FindInstallment locates an installment by its public id.
func (p *Plan) FindInstallment(installmentID string) *Installment {
	for i := range p.Installments {
		if p.Installments[i].InstallmentID == installmentID {
			return &p.Installments[i]
		}
	}
	return nil
}
