package transactionmock

import (
	"context"

	domain "aaraazi-backend/internal/domain/transaction"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies transaction.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, t *domain.Transaction) error
	ListByPropertyFn func(ctx context.Context, propertyID string) ([]*domain.Transaction, error)
	SumIncomeFn      func(ctx context.Context, propertyID string) (float64, error)
	SumExpensesFn    func(ctx context.Context, propertyID string) (float64, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Transaction, error) {
	if m.ListByPropertyFn != nil {
		return m.ListByPropertyFn(ctx, propertyID)
	}
	return nil, nil
}

func (m *Repo) SumIncome(ctx context.Context, propertyID string) (float64, error) {
	if m.SumIncomeFn != nil {
		return m.SumIncomeFn(ctx, propertyID)
	}
	return 0, nil
}

func (m *Repo) SumExpenses(ctx context.Context, propertyID string) (float64, error) {
	if m.SumExpensesFn != nil {
		return m.SumExpensesFn(ctx, propertyID)
	}
	return 0, nil
}
