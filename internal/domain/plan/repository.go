package plan

import "context"

type Repository interface {
	// Create persists the plan together with its installments.
	Create(ctx context.Context, p *Plan) error
	GetByPlanID(ctx context.Context, planID string) (*Plan, error)
	// GetByPlanIDForUpdate locks the plan row for the duration of the tx.
	GetByPlanIDForUpdate(ctx context.Context, planID string) (*Plan, error)
	Save(ctx context.Context, p *Plan) error
	SaveInstallment(ctx context.Context, i *Installment) error
	// ListActive returns all active plans with installments preloaded.
	ListActive(ctx context.Context) ([]*Plan, error)
}
