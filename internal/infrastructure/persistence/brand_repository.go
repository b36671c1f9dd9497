package persistence

import (
	"context"
	"errors"

	"github.com/cantina/backend/internal/domain/catalog"
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/cantina/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBrandRepository implements BrandRepository using GORM
type GormBrandRepository struct {
	db *gorm.DB
}

// NewGormBrandRepository creates a new GormBrandRepository
func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// FindByID finds a brand by its ID
func (r *GormBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	var model models.BrandModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return model.ToDomain(), nil
}

// FindByName finds a brand by its exact name
func (r *GormBrandRepository) FindByName(ctx context.Context, name string) (*catalog.Brand, error) {
	var model models.BrandModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return model.ToDomain(), nil
}

// FindAll returns brands ordered by name, optionally active ones only
func (r *GormBrandRepository) FindAll(ctx context.Context, activeOnly bool) ([]catalog.Brand, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var brandModels []models.BrandModel
	if err := query.Find(&brandModels).Error; err != nil {
		return nil, storageErr(err)
	}
	brands := make([]catalog.Brand, len(brandModels))
	for i := range brandModels {
		brands[i] = *brandModels[i].ToDomain()
	}
	return brands, nil
}

// Save creates or updates a brand
func (r *GormBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	model := &models.BrandModel{}
	model.FromDomain(brand)
	return storageErr(r.db.WithContext(ctx).Save(model).Error)
}

// Delete removes a brand
func (r *GormBrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BrandModel{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormBrandRepository implements BrandRepository
var _ catalog.BrandRepository = (*GormBrandRepository)(nil)
