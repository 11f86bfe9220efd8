package investmentmock

import (
	"context"

	domain "aaraazi-backend/internal/domain/investment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies investment.Repository.
type Repo struct {
	CreateFn                        func(ctx context.Context, inv *domain.Investment) error
	GetByInvestmentIDFn             func(ctx context.Context, investmentID string) (*domain.Investment, error)
	GetByInvestmentIDForUpdateFn    func(ctx context.Context, investmentID string) (*domain.Investment, error)
	SaveFn                          func(ctx context.Context, inv *domain.Investment) error
	ListByPropertyFn                func(ctx context.Context, propertyID string) ([]*domain.Investment, error)
	ListActiveByPropertyFn          func(ctx context.Context, propertyID string) ([]*domain.Investment, error)
	ListActiveByPropertyForUpdateFn func(ctx context.Context, propertyID string) ([]*domain.Investment, error)
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDForUpdateFn != nil {
		return m.GetByInvestmentIDForUpdateFn(ctx, investmentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, inv *domain.Investment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}

func (m *Repo) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Investment, error) {
	if m.ListByPropertyFn != nil {
		return m.ListByPropertyFn(ctx, propertyID)
	}
	return nil, nil
}

func (m *Repo) ListActiveByProperty(ctx context.Context, propertyID string) ([]*domain.Investment, error) {
	if m.ListActiveByPropertyFn != nil {
		return m.ListActiveByPropertyFn(ctx, propertyID)
	}
	return nil, nil
}

func (m *Repo) ListActiveByPropertyForUpdate(ctx context.Context, propertyID string) ([]*domain.Investment, error) {
	if m.ListActiveByPropertyForUpdateFn != nil {
		return m.ListActiveByPropertyForUpdateFn(ctx, propertyID)
	}
	return nil, nil
}
