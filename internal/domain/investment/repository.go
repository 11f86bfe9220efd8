package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*Investment, error)
	Save(ctx context.Context, inv *Investment) error
	ListByProperty(ctx context.Context, propertyID string) ([]*Investment, error)
	ListActiveByProperty(ctx context.Context, propertyID string) ([]*Investment, error)
	// ListActiveByPropertyForUpdate locks the property's active stakes for
	// the duration of the tx (sale distribution execution).
	ListActiveByPropertyForUpdate(ctx context.Context, propertyID string) ([]*Investment, error)
}
