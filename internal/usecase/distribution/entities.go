package distribution

import (
	"time"

	domain "aaraazi-backend/internal/domain/distribution"
)

type ExecuteInput struct {
	PropertyID string
	SalePrice  float64
	SaleDate   time.Time
	ActorID    string
	ActorName  string
	DealID     string
	Notes      string
}

type MarkPaidInput struct {
	DistributionID   string
	PaymentDate      time.Time
	PaymentMethod    string
	PaymentReference string
}

// InvestorBreakdownDTO is one investor's line in a sale preview.
type InvestorBreakdownDTO struct {
	InvestmentID     string  `json:"investment_id"`
	InvestorID       string  `json:"investor_id"`
	InvestorName     string  `json:"investor_name"`
	SharePercentage  float64 `json:"share_percentage"`
	InvestmentAmount float64 `json:"investment_amount"`
	SalePriceShare   float64 `json:"sale_price_share"`
	CapitalGain      float64 `json:"capital_gain"`
	RentalIncome     float64 `json:"rental_income"`
	Expenses         float64 `json:"expenses"`
	NetProfit        float64 `json:"net_profit"`
	TotalReturn      float64 `json:"total_return"`
	ROI              float64 `json:"roi"`
}

// SalePreviewDTO is the advisory output of the distribution calculator; it
// mutates nothing.
type SalePreviewDTO struct {
	PropertyID         string                 `json:"property_id"`
	SalePrice          float64                `json:"sale_price"`
	SaleDate           string                 `json:"sale_date"`
	TotalPurchasePrice float64                `json:"total_purchase_price"`
	CapitalGain        float64                `json:"capital_gain"`
	TotalIncome        float64                `json:"total_income"`
	TotalExpenses      float64                `json:"total_expenses"`
	NetProfit          float64                `json:"net_profit"`
	Investors          []InvestorBreakdownDTO `json:"investors"`
}

type DistributionDTO struct {
	DistributionID   string     `json:"distribution_id"`
	PropertyID       string     `json:"property_id"`
	DealID           string     `json:"deal_id,omitempty"`
	InvestmentID     string     `json:"investment_id"`
	InvestorID       string     `json:"investor_id"`
	InvestorName     string     `json:"investor_name"`
	SharePercentage  float64    `json:"share_percentage"`
	InvestmentAmount float64    `json:"investment_amount"`
	SalePrice        float64    `json:"sale_price"`
	SalePriceShare   float64    `json:"sale_price_share"`
	SaleDate         string     `json:"sale_date"`
	CapitalGain      float64    `json:"capital_gain"`
	RentalIncome     float64    `json:"rental_income"`
	Expenses         float64    `json:"expenses"`
	NetProfit        float64    `json:"net_profit"`
	TotalReturn      float64    `json:"total_return"`
	ROI              float64    `json:"roi"`
	Status           string     `json:"distribution_status"`
	DistributionDate *time.Time `json:"distribution_date,omitempty"`
	PaymentMethod    string     `json:"payment_method,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	CancelReason     string     `json:"cancel_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toDTO(d *domain.Distribution) *DistributionDTO {
	return &DistributionDTO{
		DistributionID:   d.DistributionID,
		PropertyID:       d.PropertyID,
		DealID:           d.DealID,
		InvestmentID:     d.InvestmentID,
		InvestorID:       d.InvestorID,
		InvestorName:     d.InvestorName,
		SharePercentage:  d.SharePercentage,
		InvestmentAmount: d.InvestmentAmount,
		SalePrice:        d.SalePrice,
		SalePriceShare:   d.SalePriceShare,
		SaleDate:         d.SaleDate.Format("2006-01-02"),
		CapitalGain:      d.CapitalGain,
		RentalIncome:     d.RentalIncome,
		Expenses:         d.Expenses,
		NetProfit:        d.NetProfit,
		TotalReturn:      d.TotalReturn,
		ROI:              d.ROI,
		Status:           string(d.Status),
		DistributionDate: d.DistributionDate,
		PaymentMethod:    d.PaymentMethod,
		PaymentReference: d.PaymentReference,
		CancelReason:     d.CancelReason,
		CreatedAt:        d.CreatedAt,
	}
}
