package investment

import (
	"time"

	domain "aaraazi-backend/internal/domain/investment"
)

type CreateInvestmentInput struct {
	InvestorID       string
	InvestorName     string
	PropertyID       string
	SharePercentage  float64
	InvestmentAmount float64
}

// RecordEntryInput appends one income or expense entry to a property's
// ledger. Category is only used for expenses and must carry the "expense-"
// prefix; income entries are always rental-income.
type RecordEntryInput struct {
	PropertyID string
	Category   string
	Amount     float64
	OccurredAt time.Time
	Note       string
}

type InvestmentDTO struct {
	InvestmentID     string     `json:"investment_id"`
	InvestorID       string     `json:"investor_id"`
	InvestorName     string     `json:"investor_name"`
	PropertyID       string     `json:"property_id"`
	SharePercentage  float64    `json:"share_percentage"`
	InvestmentAmount float64    `json:"investment_amount"`
	Status           string     `json:"status"`
	RentalIncome     float64    `json:"rental_income"`
	TotalExpenses    float64    `json:"total_expenses"`
	ExitDate         *time.Time `json:"exit_date,omitempty"`
	ExitValue        float64    `json:"exit_value,omitempty"`
	RealizedProfit   float64    `json:"realized_profit,omitempty"`
	ROI              float64    `json:"roi,omitempty"`
	DistributionID   string     `json:"distribution_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toDTO(inv *domain.Investment) *InvestmentDTO {
	return &InvestmentDTO{
		InvestmentID:     inv.InvestmentID,
		InvestorID:       inv.InvestorID,
		InvestorName:     inv.InvestorName,
		PropertyID:       inv.PropertyID,
		SharePercentage:  inv.SharePercentage,
		InvestmentAmount: inv.InvestmentAmount,
		Status:           string(inv.Status),
		RentalIncome:     inv.RentalIncome,
		TotalExpenses:    inv.TotalExpenses,
		ExitDate:         inv.ExitDate,
		ExitValue:        inv.ExitValue,
		RealizedProfit:   inv.RealizedProfit,
		ROI:              inv.ROI,
		DistributionID:   inv.DistributionID,
		CreatedAt:        inv.CreatedAt,
	}
}
