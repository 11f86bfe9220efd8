package uowmock

import (
	"context"

	"aaraazi-backend/internal/domain/plan"
	"aaraazi-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

// UoW is a function-backed mock that satisfies uow.UnitOfWork. By default
// it passes the configured Repos straight through (no transaction), which
// is what most usecase tests want; override the Fn fields for failure
// injection.
type UoW struct {
	Repos uow.Repos

	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPlanTxFn func(ctx context.Context, planID string, fn func(r uow.Repos, p *plan.Plan) error) error
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinPlanTx(ctx context.Context, planID string, fn func(r uow.Repos, p *plan.Plan) error) error {
	if m.WithinPlanTxFn != nil {
		return m.WithinPlanTxFn(ctx, planID, fn)
	}
	p, err := m.Repos.Plans.GetByPlanIDForUpdate(ctx, planID)
	if err != nil {
		return err
	}
	return fn(m.Repos, p)
}
