package investment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive Status = "active"
	StatusExited Status = "exited"
)

var (
	ErrNotFound      = errors.New("investment not found")
	ErrShareOverflow = errors.New("property share percentages would exceed 100")
)

// Investment is one investor's fractional stake in one property.
type Investment struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID     string         `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	InvestorID       string         `gorm:"size:32;index:idx_investments_investor" json:"investor_id"`
	InvestorName     string         `gorm:"size:128" json:"investor_name"`
	PropertyID       string         `gorm:"size:32;index:idx_investments_property" json:"property_id"`
	SharePercentage  float64        `gorm:"type:decimal(6,2)" json:"share_percentage"`
	InvestmentAmount float64        `gorm:"type:decimal(18,2)" json:"investment_amount"`
	Status           Status         `gorm:"size:16;default:'active'" json:"status"`
	RentalIncome     float64        `gorm:"type:decimal(18,2)" json:"rental_income"`
	TotalExpenses    float64        `gorm:"type:decimal(18,2)" json:"total_expenses"`
	ExitDate         *time.Time     `gorm:"type:date" json:"exit_date,omitempty"`
	ExitValue        float64        `gorm:"type:decimal(18,2)" json:"exit_value,omitempty"`
	RealizedProfit   float64        `gorm:"type:decimal(18,2)" json:"realized_profit,omitempty"`
	ROI              float64        `gorm:"type:decimal(8,2)" json:"roi,omitempty"`
	DistributionID   string         `gorm:"size:32" json:"distribution_id,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investment) TableName() string { return "investor_investments" }

// Exit flips the investment to exited with the sale outcome stamped on it.
func (inv *Investment) Exit(saleDate time.Time, exitValue, realizedProfit, roi float64, distributionID string) {
	inv.Status = StatusExited
	d := saleDate
	inv.ExitDate = &d
	inv.ExitValue = exitValue
	inv.RealizedProfit = realizedProfit
	inv.ROI = roi
	inv.DistributionID = distributionID
}

// ReverseExit reverts a cancelled distribution's exit back to active.
func (inv *Investment) ReverseExit() {
	inv.Status = StatusActive
	inv.ExitDate = nil
	inv.ExitValue = 0
	inv.RealizedProfit = 0
	inv.ROI = 0
	inv.DistributionID = ""
}
