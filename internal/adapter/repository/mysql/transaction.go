package mysql

import (
	"context"

	txDomain "aaraazi-backend/internal/domain/transaction"

	"gorm.io/gorm"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) ListByProperty(ctx context.Context, propertyID string) ([]*txDomain.Transaction, error) {
	var out []*txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("occurred_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) SumIncome(ctx context.Context, propertyID string) (float64, error) {
	var sum float64
	res := r.db.WithContext(ctx).
		Model(&txDomain.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("property_id = ? AND category = ?", propertyID, txDomain.CategoryRentalIncome).
		Scan(&sum)
	return sum, res.Error
}

func (r *TransactionRepository) SumExpenses(ctx context.Context, propertyID string) (float64, error) {
	var sum float64
	res := r.db.WithContext(ctx).
		Model(&txDomain.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("property_id = ? AND category LIKE ?", propertyID, txDomain.ExpensePrefix+"%").
		Scan(&sum)
	return sum, res.Error
}
