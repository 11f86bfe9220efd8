package transaction

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	ListByProperty(ctx context.Context, propertyID string) ([]*Transaction, error)
	// SumIncome totals rental-income entries for a property.
	SumIncome(ctx context.Context, propertyID string) (float64, error)
	// SumExpenses totals expense-* entries for a property.
	SumExpenses(ctx context.Context, propertyID string) (float64, error)
}
