package mysql

import (
	"context"

	planDomain "aaraazi-backend/internal/domain/plan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlanRepository struct{ db *gorm.DB }

func NewPlanRepository(db *gorm.DB) *PlanRepository { return &PlanRepository{db: db} }

func withInstallments(db *gorm.DB) *gorm.DB {
	return db.Preload("Installments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("installment_number ASC")
	})
}

// Create persists the plan and its installments in one go; gorm wraps the
// association inserts in a transaction.
func (r *PlanRepository) Create(ctx context.Context, p *planDomain.Plan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlanRepository) GetByPlanID(ctx context.Context, planID string) (*planDomain.Plan, error) {
	var out planDomain.Plan
	res := withInstallments(r.db.WithContext(ctx)).
		Where("plan_id = ?", planID).
		First(&out)
	return &out, res.Error
}

func (r *PlanRepository) GetByPlanIDForUpdate(ctx context.Context, planID string) (*planDomain.Plan, error) {
	var out planDomain.Plan
	res := withInstallments(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})).
		Where("plan_id = ?", planID).
		First(&out)
	return &out, res.Error
}

// Save updates plan columns only; installments are written through
// SaveInstallment so a plan save never clobbers them.
func (r *PlanRepository) Save(ctx context.Context, p *planDomain.Plan) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *PlanRepository) SaveInstallment(ctx context.Context, i *planDomain.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]*planDomain.Plan, error) {
	var out []*planDomain.Plan
	res := withInstallments(r.db.WithContext(ctx)).
		Where("status = ?", planDomain.StatusActive).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
