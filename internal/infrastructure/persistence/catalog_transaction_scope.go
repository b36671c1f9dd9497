package persistence

import (
	"context"

	appcatalog "github.com/cantina/backend/internal/application/catalog"
	"github.com/cantina/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormCatalogTransactionScope implements the catalog TransactionScope using
// GORM transactions.
type GormCatalogTransactionScope struct {
	db *gorm.DB
}

// NewGormCatalogTransactionScope creates a new GormCatalogTransactionScope
func NewGormCatalogTransactionScope(db *gorm.DB) *GormCatalogTransactionScope {
	return &GormCatalogTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormCatalogTransactionScope) Execute(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormCatalogRepositories{tx: tx}
		return fn(repos)
	})
}

// gormCatalogRepositories provides the catalog repositories scoped to one transaction
type gormCatalogRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormCatalogRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// CategoryRepo returns the category repository scoped to the current transaction
func (r *gormCatalogRepositories) CategoryRepo() catalog.CategoryRepository {
	return NewGormCategoryRepository(r.tx)
}

// SubcategoryRepo returns the subcategory repository scoped to the current transaction
func (r *gormCatalogRepositories) SubcategoryRepo() catalog.SubcategoryRepository {
	return NewGormSubcategoryRepository(r.tx)
}

// SupplierRepo returns the supplier repository scoped to the current transaction
func (r *gormCatalogRepositories) SupplierRepo() catalog.SupplierRepository {
	return NewGormSupplierRepository(r.tx)
}

// BrandRepo returns the brand repository scoped to the current transaction
func (r *gormCatalogRepositories) BrandRepo() catalog.BrandRepository {
	return NewGormBrandRepository(r.tx)
}

// Ensure GormCatalogTransactionScope implements TransactionScope
var _ appcatalog.TransactionScope = (*GormCatalogTransactionScope)(nil)

// Ensure gormCatalogRepositories implements TransactionalRepositories
var _ appcatalog.TransactionalRepositories = (*gormCatalogRepositories)(nil)
