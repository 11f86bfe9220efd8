package plan

import (
	"time"

	domain "aaraazi-backend/internal/domain/plan"
)

type CreatePlanInput struct {
	SaleCycleID          string
	PropertyID           string
	BuyerID              string
	BuyerName            string
	TotalAmount          float64
	DownPayment          float64
	NumberOfInstallments int
	StartDate            time.Time
	Frequency            domain.Frequency
	CustomDates          []time.Time
}

type InstallmentDTO struct {
	InstallmentID string     `json:"installment_id"`
	Number        int        `json:"installment_number"`
	DueDate       string     `json:"due_date"`
	Amount        float64    `json:"amount"`
	PaidAmount    float64    `json:"paid_amount"`
	Status        string     `json:"status"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	ReceiptID     string     `json:"receipt_id,omitempty"`
}

type PlanDTO struct {
	PlanID               string           `json:"plan_id"`
	SaleCycleID          string           `json:"sale_cycle_id"`
	PropertyID           string           `json:"property_id"`
	BuyerID              string           `json:"buyer_id"`
	BuyerName            string           `json:"buyer_name"`
	TotalAmount          float64          `json:"total_amount"`
	DownPayment          float64          `json:"down_payment"`
	RemainingAmount      float64          `json:"remaining_amount"`
	InstallmentAmount    float64          `json:"installment_amount"`
	NumberOfInstallments int              `json:"number_of_installments"`
	Frequency            string           `json:"frequency"`
	StartDate            string           `json:"start_date"`
	Status               string           `json:"status"`
	Installments         []InstallmentDTO `json:"installments"`
	CreatedAt            time.Time        `json:"created_at"`
}

const dateLayout = "2006-01-02"

func ToDTO(p *domain.Plan) *PlanDTO {
	out := &PlanDTO{
		PlanID:               p.PlanID,
		SaleCycleID:          p.SaleCycleID,
		PropertyID:           p.PropertyID,
		BuyerID:              p.BuyerID,
		BuyerName:            p.BuyerName,
		TotalAmount:          p.TotalAmount,
		DownPayment:          p.DownPayment,
		RemainingAmount:      p.RemainingAmount,
		InstallmentAmount:    p.InstallmentAmount,
		NumberOfInstallments: p.NumberOfInstallments,
		Frequency:            string(p.Frequency),
		StartDate:            p.StartDate.Format(dateLayout),
		Status:               string(p.Status),
		Installments:         make([]InstallmentDTO, 0, len(p.Installments)),
		CreatedAt:            p.CreatedAt,
	}
	for i := range p.Installments {
		ins := &p.Installments[i]
		out.Installments = append(out.Installments, InstallmentDTO{
			InstallmentID: ins.InstallmentID,
			Number:        ins.Number,
			DueDate:       ins.DueDate.Format(dateLayout),
			Amount:        ins.Amount,
			PaidAmount:    ins.PaidAmount,
			Status:        string(ins.Status),
			PaidDate:      ins.PaidDate,
			PaymentMethod: ins.PaymentMethod,
			ReceiptID:     ins.ReceiptID,
		})
	}
	return out
}
