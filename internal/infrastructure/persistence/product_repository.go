package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/cantina/backend/internal/domain/catalog"
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/cantina/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return model.ToDomain(), nil
}

// FindAll finds products matching the filter with pagination
func (r *GormProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) (*shared.Paginated[catalog.Product], error) {
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, storageErr(err)
	}

	sortField := ValidateSortField(filter.OrderBy, ProductSortFields, "name")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("products.%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	var productModels []models.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, storageErr(err)
	}

	products := make([]catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	result := shared.NewPaginated(products, total, filter.Page, filter.PageSize)
	return &result, nil
}

// FindMovements returns a page of the product's stock ledger, newest first
func (r *GormProductRepository) FindMovements(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[catalog.StockMovement], error) {
	query := r.db.WithContext(ctx).Model(&models.StockMovementModel{}).
		Where("product_id = ?", productID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, storageErr(err)
	}

	sortField := ValidateSortField(filter.OrderBy, StockMovementSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	var movementModels []models.StockMovementModel
	if err := query.Find(&movementModels).Error; err != nil {
		return nil, storageErr(err)
	}

	movements := make([]catalog.StockMovement, len(movementModels))
	for i := range movementModels {
		movements[i] = *movementModels[i].ToDomain()
	}
	result := shared.NewPaginated(movements, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Save creates or updates a product. The ledger is written separately
// through SaveMovement.
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := &models.ProductModel{}
	model.FromDomain(product)
	return storageErr(r.db.WithContext(ctx).Save(model).Error)
}

// SaveMovement appends one ledger entry. Entries are never updated.
func (r *GormProductRepository) SaveMovement(ctx context.Context, movement *catalog.StockMovement) error {
	model := &models.StockMovementModel{}
	model.FromDomain(movement)
	return storageErr(r.db.WithContext(ctx).Create(model).Error)
}

// Delete removes a product; its ledger goes with it via the cascade
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilterWithoutPagination applies filter conditions without pagination
func (r *GormProductRepository) applyFilterWithoutPagination(query *gorm.DB, filter catalog.ProductFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("(products.name ILIKE ? OR products.description ILIKE ?)", searchPattern, searchPattern)
	}
	if filter.SubcategoryID != nil {
		query = query.Where("products.subcategory_id = ?", *filter.SubcategoryID)
	}
	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
			Where("subcategories.category_id = ?", *filter.CategoryID)
	}
	if filter.SupplierID != nil {
		query = query.Where("products.supplier_id = ?", *filter.SupplierID)
	}
	if filter.BrandID != nil {
		query = query.Where("products.brand_id = ?", *filter.BrandID)
	}
	if filter.ActiveOnly {
		query = query.Where("products.active = ?", true)
	}
	return query
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
