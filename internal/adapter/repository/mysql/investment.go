package mysql

import (
	"context"

	invDomain "aaraazi-backend/internal/domain/investment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investment_id = ?", investmentID).
		First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("investment_id = ?", investmentID).
		First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) Save(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvestmentRepository) ListByProperty(ctx context.Context, propertyID string) ([]*invDomain.Investment, error) {
	var out []*invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListActiveByProperty(ctx context.Context, propertyID string) ([]*invDomain.Investment, error) {
	var out []*invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("property_id = ? AND status = ?", propertyID, invDomain.StatusActive).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListActiveByPropertyForUpdate(ctx context.Context, propertyID string) ([]*invDomain.Investment, error) {
	var out []*invDomain.Investment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("property_id = ? AND status = ?", propertyID, invDomain.StatusActive).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
