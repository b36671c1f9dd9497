package catalog

import (
	"context"

	"github.com/cantina/backend/internal/domain/catalog"
)

// TransactionScope provides transactional access to the catalog repositories.
// Product creation with opening stock and stock movements write the product
// row and the ledger entry together, so they run inside a scope.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the catalog repositories
// within a transaction.
type TransactionalRepositories interface {
	ProductRepo() catalog.ProductRepository
	CategoryRepo() catalog.CategoryRepository
	SubcategoryRepo() catalog.SubcategoryRepository
	SupplierRepo() catalog.SupplierRepository
	BrandRepo() catalog.BrandRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	productRepo     catalog.ProductRepository
	categoryRepo    catalog.CategoryRepository
	subcategoryRepo catalog.SubcategoryRepository
	supplierRepo    catalog.SupplierRepository
	brandRepo       catalog.BrandRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	subcategoryRepo catalog.SubcategoryRepository,
	supplierRepo catalog.SupplierRepository,
	brandRepo catalog.BrandRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		supplierRepo:    supplierRepo,
		brandRepo:       brandRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

func (s *NoOpTransactionScope) CategoryRepo() catalog.CategoryRepository {
	return s.categoryRepo
}

func (s *NoOpTransactionScope) SubcategoryRepo() catalog.SubcategoryRepository {
	return s.subcategoryRepo
}

func (s *NoOpTransactionScope) SupplierRepo() catalog.SupplierRepository {
	return s.supplierRepo
}

func (s *NoOpTransactionScope) BrandRepo() catalog.BrandRepository {
	return s.brandRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
