package mysql

import (
	"context"

	distDomain "aaraazi-backend/internal/domain/distribution"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DistributionRepository struct{ db *gorm.DB }

func NewDistributionRepository(db *gorm.DB) *DistributionRepository {
	return &DistributionRepository{db: db}
}

func (r *DistributionRepository) Create(ctx context.Context, d *distDomain.Distribution) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DistributionRepository) GetByDistributionID(ctx context.Context, distributionID string) (*distDomain.Distribution, error) {
	var out distDomain.Distribution
	res := r.db.WithContext(ctx).
		Where("distribution_id = ?", distributionID).
		First(&out)
	return &out, res.Error
}

func (r *DistributionRepository) GetByDistributionIDForUpdate(ctx context.Context, distributionID string) (*distDomain.Distribution, error) {
	var out distDomain.Distribution
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("distribution_id = ?", distributionID).
		First(&out)
	return &out, res.Error
}

func (r *DistributionRepository) Save(ctx context.Context, d *distDomain.Distribution) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DistributionRepository) ListByProperty(ctx context.Context, propertyID string) ([]*distDomain.Distribution, error) {
	var out []*distDomain.Distribution
	res := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
