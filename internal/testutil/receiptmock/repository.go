package receiptmock

import (
	"context"

	domain "aaraazi-backend/internal/domain/receipt"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies receipt.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, r *domain.Receipt) error
	GetByReceiptIDFn func(ctx context.Context, receiptID string) (*domain.Receipt, error)
	CountFn          func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Receipt) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByReceiptID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	if m.GetByReceiptIDFn != nil {
		return m.GetByReceiptIDFn(ctx, receiptID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
