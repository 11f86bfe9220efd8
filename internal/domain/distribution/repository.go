package distribution

import "context"

type Repository interface {
	Create(ctx context.Context, d *Distribution) error
	GetByDistributionID(ctx context.Context, distributionID string) (*Distribution, error)
	GetByDistributionIDForUpdate(ctx context.Context, distributionID string) (*Distribution, error)
	Save(ctx context.Context, d *Distribution) error
	ListByProperty(ctx context.Context, propertyID string) ([]*Distribution, error)
}
