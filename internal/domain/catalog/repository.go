package catalog

import (
	"context"

	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductFilter narrows product listings
type ProductFilter struct {
	shared.Filter
	SubcategoryID *uuid.UUID
	CategoryID    *uuid.UUID
	SupplierID    *uuid.UUID
	BrandID       *uuid.UUID
	Search        string
	ActiveOnly    bool
}

// ProductRepository persists products together with their movement ledger
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter ProductFilter) (*shared.Paginated[Product], error)
	FindMovements(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[StockMovement], error)
	Save(ctx context.Context, product *Product) error
	SaveMovement(ctx context.Context, movement *StockMovement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubcategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Subcategory, error)
	FindByCategoryAndName(ctx context.Context, categoryID uuid.UUID, name string) (*Subcategory, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Subcategory, error)
	FindAll(ctx context.Context) ([]Subcategory, error)
	Save(ctx context.Context, subcategory *Subcategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindAll(ctx context.Context, activeOnly bool) ([]Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BrandRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Brand, error)
	FindByName(ctx context.Context, name string) (*Brand, error)
	FindAll(ctx context.Context, activeOnly bool) ([]Brand, error)
	Save(ctx context.Context, brand *Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}
