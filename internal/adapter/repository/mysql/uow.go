package mysql

import (
	"context"

	"aaraazi-backend/internal/domain/plan"
	"aaraazi-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Plans:         &PlanRepository{db: tx},
		Receipts:      &ReceiptRepository{db: tx},
		Investments:   &InvestmentRepository{db: tx},
		Distributions: &DistributionRepository{db: tx},
		Transactions:  &TransactionRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinPlanTx(ctx context.Context, planID string, fn func(r uow.Repos, p *plan.Plan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the plan row up-front to prevent races
		p, err := r.Plans.GetByPlanIDForUpdate(ctx, planID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
