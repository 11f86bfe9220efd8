package uow

import (
	"context"

	"aaraazi-backend/internal/domain/distribution"
	"aaraazi-backend/internal/domain/investment"
	"aaraazi-backend/internal/domain/plan"
	"aaraazi-backend/internal/domain/receipt"
	"aaraazi-backend/internal/domain/transaction"
)

type Repos struct {
	Plans         plan.Repository
	Receipts      receipt.Repository
	Investments   investment.Repository
	Distributions distribution.Repository
	Transactions  transaction.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the plan row first, then pass it in
	WithinPlanTx(ctx context.Context, planID string, fn func(r Repos, p *plan.Plan) error) error
}
