package distribution

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

var (
	ErrNotFound            = errors.New("distribution not found")
	ErrNotPending          = errors.New("distribution is not pending")
	ErrNoActiveInvestments = errors.New("property has no active investor investments")
	ErrReasonRequired      = errors.New("cancellation reason is required")
	ErrSharesNotFullyOwned = errors.New("active share percentages do not sum to 100")
)

// Distribution is one investor's payout record from a property sale.
type Distribution struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"-"`
	DistributionID   string         `gorm:"size:32;uniqueIndex:ux_distributions_distribution_id" json:"distribution_id"`
	PropertyID       string         `gorm:"size:32;index:idx_distributions_property" json:"property_id"`
	DealID           string         `gorm:"size:32" json:"deal_id,omitempty"`
	InvestmentID     string         `gorm:"size:32;index" json:"investment_id"`
	InvestorID       string         `gorm:"size:32;index:idx_distributions_investor" json:"investor_id"`
	InvestorName     string         `gorm:"size:128" json:"investor_name"`
	SharePercentage  float64        `gorm:"type:decimal(6,2)" json:"share_percentage"`
	InvestmentAmount float64        `gorm:"type:decimal(18,2)" json:"investment_amount"`
	SalePrice        float64        `gorm:"type:decimal(18,2)" json:"sale_price"`
	SalePriceShare   float64        `gorm:"type:decimal(18,2)" json:"sale_price_share"`
	SaleDate         time.Time      `gorm:"type:date" json:"sale_date"`
	CapitalGain      float64        `gorm:"type:decimal(18,2)" json:"capital_gain"`
	RentalIncome     float64        `gorm:"type:decimal(18,2)" json:"rental_income"`
	Expenses         float64        `gorm:"type:decimal(18,2)" json:"expenses"`
	NetProfit        float64        `gorm:"type:decimal(18,2)" json:"net_profit"`
	TotalReturn      float64        `gorm:"type:decimal(18,2)" json:"total_return"`
	ROI              float64        `gorm:"type:decimal(8,2)" json:"roi"`
	Status           Status         `gorm:"size:16;default:'pending'" json:"distribution_status"`
	DistributionDate *time.Time     `gorm:"type:date" json:"distribution_date,omitempty"`
	PaymentMethod    string         `gorm:"size:16" json:"payment_method,omitempty"`
	PaymentReference string         `gorm:"size:64" json:"payment_reference,omitempty"`
	CancelReason     string         `gorm:"type:text" json:"cancel_reason,omitempty"`
	Notes            string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy        string         `gorm:"size:32" json:"created_by"`
	CreatedByName    string         `gorm:"size:128" json:"created_by_name"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Distribution) TableName() string { return "investor_distributions" }
