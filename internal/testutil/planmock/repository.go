package planmock

import (
	"context"

	domain "aaraazi-backend/internal/domain/plan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies plan.Repository.
// Only fill the functions a test needs; unfilled lookups fail loudly.
type Repo struct {
	CreateFn               func(ctx context.Context, p *domain.Plan) error
	GetByPlanIDFn          func(ctx context.Context, planID string) (*domain.Plan, error)
	GetByPlanIDForUpdateFn func(ctx context.Context, planID string) (*domain.Plan, error)
	SaveFn                 func(ctx context.Context, p *domain.Plan) error
	SaveInstallmentFn      func(ctx context.Context, i *domain.Installment) error
	ListActiveFn           func(ctx context.Context) ([]*domain.Plan, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Plan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPlanID(ctx context.Context, planID string) (*domain.Plan, error) {
	if m.GetByPlanIDFn != nil {
		return m.GetByPlanIDFn(ctx, planID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByPlanIDForUpdate(ctx context.Context, planID string) (*domain.Plan, error) {
	if m.GetByPlanIDForUpdateFn != nil {
		return m.GetByPlanIDForUpdateFn(ctx, planID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, p *domain.Plan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) SaveInstallment(ctx context.Context, i *domain.Installment) error {
	if m.SaveInstallmentFn != nil {
		return m.SaveInstallmentFn(ctx, i)
	}
	return nil
}

func (m *Repo) ListActive(ctx context.Context) ([]*domain.Plan, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}
