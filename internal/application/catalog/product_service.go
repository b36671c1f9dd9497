package catalog

import (
	"context"

	"github.com/cantina/backend/internal/domain/catalog"
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService provides application-level product operations. Creation
// with opening stock writes the product and the opening ledger entry in one
// transaction.
type ProductService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(scope TransactionScope, logger *zap.Logger) *ProductService {
	return &ProductService{scope: scope, logger: logger}
}

// CreateProduct creates a product, computing its derived prices. A positive
// InitialStock synthesizes the opening In movement.
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if req.InitialStock < 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Initial stock cannot be negative")
	}

	var resp ProductResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.SubcategoryRepo().FindByID(ctx, req.SubcategoryID); err != nil {
			return err
		}
		if req.SupplierID != nil {
			if _, err := repos.SupplierRepo().FindByID(ctx, *req.SupplierID); err != nil {
				return err
			}
		}
		if req.BrandID != nil {
			if _, err := repos.BrandRepo().FindByID(ctx, *req.BrandID); err != nil {
				return err
			}
		}

		product, err := catalog.NewProduct(
			req.SubcategoryID,
			req.SupplierID,
			req.BrandID,
			req.Name,
			req.Description,
			catalog.PurchaseType(req.PurchaseType),
			req.UnitsPerPackage,
			req.PackagePurchasePrice,
			req.PurchaseDiscountPercent,
			catalog.SaleType(req.SaleType),
			req.ProfitMarginPercent,
			req.FinalSalePrice,
		)
		if err != nil {
			return err
		}

		var opening *catalog.StockMovement
		if req.InitialStock > 0 {
			opening, err = product.RecordMovement(catalog.MovementTypeIn, req.InitialStock, catalog.InitialStockNote)
			if err != nil {
				return err
			}
		}

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		if opening != nil {
			if err := repos.ProductRepo().SaveMovement(ctx, opening); err != nil {
				return err
			}
		}

		resp = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", resp.ID.String()),
		zap.String("name", resp.Name),
		zap.Int("initial_stock", req.InitialStock))

	return &resp, nil
}

// UpdateProduct replaces a product's details, purchase and sale data and
// recomputes the derived prices. Stock is never changed here; that is what
// movements are for.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	var resp ProductResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err := repos.SubcategoryRepo().FindByID(ctx, req.SubcategoryID); err != nil {
			return err
		}

		if err := product.UpdateDetails(req.SubcategoryID, req.SupplierID, req.BrandID, req.Name, req.Description); err != nil {
			return err
		}
		if err := product.UpdatePurchaseData(
			catalog.PurchaseType(req.PurchaseType),
			req.UnitsPerPackage,
			req.PackagePurchasePrice,
			req.PurchaseDiscountPercent,
		); err != nil {
			return err
		}
		if err := product.UpdateSaleData(
			catalog.SaleType(req.SaleType),
			req.ProfitMarginPercent,
			req.FinalSalePrice,
		); err != nil {
			return err
		}

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		resp = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProduct returns a single product
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	var resp ProductResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		resp = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListProducts returns a page of products matching the filter
func (s *ProductService) ListProducts(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	base := shared.DefaultFilter()
	if filter.Page > 0 {
		base.Page = filter.Page
	}
	if filter.PageSize > 0 {
		base.PageSize = filter.PageSize
	}
	domainFilter := catalog.ProductFilter{
		Filter:        base,
		SubcategoryID: filter.SubcategoryID,
		CategoryID:    filter.CategoryID,
		SupplierID:    filter.SupplierID,
		BrandID:       filter.BrandID,
		Search:        filter.Search,
		ActiveOnly:    filter.ActiveOnly,
	}

	var resp shared.Paginated[ProductResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		page, err := repos.ProductRepo().FindAll(ctx, domainFilter)
		if err != nil {
			return err
		}
		items := make([]ProductResponse, 0, len(page.Items))
		for i := range page.Items {
			items = append(items, toProductResponse(&page.Items[i]))
		}
		resp = shared.NewPaginated(items, page.Total, page.Page, page.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeactivateProduct hides a product from listings
func (s *ProductService) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		product.Deactivate()
		return repos.ProductRepo().Save(ctx, product)
	})
}

// ActivateProduct makes a product visible again
func (s *ProductService) ActivateProduct(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		product.Activate()
		return repos.ProductRepo().Save(ctx, product)
	})
}

// DeleteProduct removes a product permanently together with its stock ledger
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ProductRepo().FindByID(ctx, id); err != nil {
			return err
		}
		return repos.ProductRepo().Delete(ctx, id)
	})
}
