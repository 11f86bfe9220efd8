package plan

import (
	"context"

	domain "aaraazi-backend/internal/domain/plan"
	"aaraazi-backend/internal/metrics"
	"aaraazi-backend/pkg/id"
	"aaraazi-backend/pkg/money"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Create generates a plan with a fully materialized installment schedule and
// persists it. The schedule itself is deterministic; persistence is the only
// side effect.
func (u *Usecase) Create(ctx context.Context, in CreatePlanInput) (*PlanDTO, error) {
	installments, err := BuildSchedule(in.TotalAmount, in.DownPayment, in.NumberOfInstallments, in.StartDate, in.Frequency, in.CustomDates)
	if err != nil {
		return nil, err
	}

	remaining := money.Sub(in.TotalAmount, in.DownPayment)
	p := &domain.Plan{
		PlanID:               id.NewID32(),
		SaleCycleID:          in.SaleCycleID,
		PropertyID:           in.PropertyID,
		BuyerID:              in.BuyerID,
		BuyerName:            in.BuyerName,
		TotalAmount:          in.TotalAmount,
		DownPayment:          in.DownPayment,
		RemainingAmount:      remaining,
		InstallmentAmount:    installments[0].Amount,
		NumberOfInstallments: in.NumberOfInstallments,
		Frequency:            in.Frequency,
		StartDate:            in.StartDate,
		Status:               domain.StatusActive,
		Installments:         installments,
	}

	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	metrics.PlansCreated.Inc()
	return ToDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, planID string) (*PlanDTO, error) {
	p, err := u.repo.GetByPlanID(ctx, planID)
	if err != nil {
		return nil, err
	}
	return ToDTO(p), nil
}
