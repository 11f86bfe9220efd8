package mysql

import (
	"context"

	receiptDomain "aaraazi-backend/internal/domain/receipt"

	"gorm.io/gorm"
)

type ReceiptRepository struct{ db *gorm.DB }

func NewReceiptRepository(db *gorm.DB) *ReceiptRepository { return &ReceiptRepository{db: db} }

func (r *ReceiptRepository) Create(ctx context.Context, rec *receiptDomain.Receipt) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ReceiptRepository) GetByReceiptID(ctx context.Context, receiptID string) (*receiptDomain.Receipt, error) {
	var out receiptDomain.Receipt
	res := r.db.WithContext(ctx).
		Where("receipt_id = ?", receiptID).
		First(&out)
	return &out, res.Error
}

func (r *ReceiptRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&receiptDomain.Receipt{}).Count(&n)
	return n, res.Error
}
