package distributionmock

import (
	"context"

	domain "aaraazi-backend/internal/domain/distribution"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies distribution.Repository.
type Repo struct {
	CreateFn                       func(ctx context.Context, d *domain.Distribution) error
	GetByDistributionIDFn          func(ctx context.Context, distributionID string) (*domain.Distribution, error)
	GetByDistributionIDForUpdateFn func(ctx context.Context, distributionID string) (*domain.Distribution, error)
	SaveFn                         func(ctx context.Context, d *domain.Distribution) error
	ListByPropertyFn               func(ctx context.Context, propertyID string) ([]*domain.Distribution, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Distribution) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDistributionID(ctx context.Context, distributionID string) (*domain.Distribution, error) {
	if m.GetByDistributionIDFn != nil {
		return m.GetByDistributionIDFn(ctx, distributionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByDistributionIDForUpdate(ctx context.Context, distributionID string) (*domain.Distribution, error) {
	if m.GetByDistributionIDForUpdateFn != nil {
		return m.GetByDistributionIDForUpdateFn(ctx, distributionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, d *domain.Distribution) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Distribution, error) {
	if m.ListByPropertyFn != nil {
		return m.ListByPropertyFn(ctx, propertyID)
	}
	return nil, nil
}
