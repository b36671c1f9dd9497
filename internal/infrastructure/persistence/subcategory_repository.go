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

// GormSubcategoryRepository implements SubcategoryRepository using GORM
type GormSubcategoryRepository struct {
	db *gorm.DB
}

// NewGormSubcategoryRepository creates a new GormSubcategoryRepository
func NewGormSubcategoryRepository(db *gorm.DB) *GormSubcategoryRepository {
	return &GormSubcategoryRepository{db: db}
}

// FindByID finds a subcategory by its ID
func (r *GormSubcategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Subcategory, error) {
	var model models.SubcategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return model.ToDomain(), nil
}

// FindByCategoryAndName finds a subcategory by name within one category
func (r *GormSubcategoryRepository) FindByCategoryAndName(ctx context.Context, categoryID uuid.UUID, name string) (*catalog.Subcategory, error) {
	var model models.SubcategoryModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ? AND name = ?", categoryID, name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return model.ToDomain(), nil
}

// FindByCategory returns the subcategories of one category ordered by name
func (r *GormSubcategoryRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Subcategory, error) {
	var subcategoryModels []models.SubcategoryModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&subcategoryModels).Error; err != nil {
		return nil, storageErr(err)
	}
	return toSubcategories(subcategoryModels), nil
}

// FindAll returns all subcategories ordered by name
func (r *GormSubcategoryRepository) FindAll(ctx context.Context) ([]catalog.Subcategory, error) {
	var subcategoryModels []models.SubcategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&subcategoryModels).Error; err != nil {
		return nil, storageErr(err)
	}
	return toSubcategories(subcategoryModels), nil
}

// Save creates or updates a subcategory
func (r *GormSubcategoryRepository) Save(ctx context.Context, subcategory *catalog.Subcategory) error {
	model := &models.SubcategoryModel{}
	model.FromDomain(subcategory)
	return storageErr(r.db.WithContext(ctx).Save(model).Error)
}

// Delete removes a subcategory
func (r *GormSubcategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SubcategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toSubcategories(subcategoryModels []models.SubcategoryModel) []catalog.Subcategory {
	subcategories := make([]catalog.Subcategory, len(subcategoryModels))
	for i := range subcategoryModels {
		subcategories[i] = *subcategoryModels[i].ToDomain()
	}
	return subcategories
}

// Ensure GormSubcategoryRepository implements SubcategoryRepository
var _ catalog.SubcategoryRepository = (*GormSubcategoryRepository)(nil)
