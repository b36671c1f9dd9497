package catalog

import (
	"context"

	"github.com/cantina/backend/internal/domain/catalog"
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReferenceService provides CRUD for the classification tables products hang
// off: categories, subcategories, suppliers and brands.
type ReferenceService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(scope TransactionScope, logger *zap.Logger) *ReferenceService {
	return &ReferenceService{scope: scope, logger: logger}
}

// ===================== Categories =====================

// CreateCategory creates a category with a unique name
func (s *ReferenceService) CreateCategory(ctx context.Context, req NameRequest) (*CategoryResponse, error) {
	var resp CategoryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.CategoryRepo().FindByName(ctx, req.Name)
		if err != nil && err != shared.ErrNotFound {
			return err
		}
		if existing != nil {
			return shared.NewDomainError("VALIDATION_ERROR", "A category with this name already exists")
		}

		category, err := catalog.NewCategory(req.Name)
		if err != nil {
			return err
		}
		if err := repos.CategoryRepo().Save(ctx, category); err != nil {
			return err
		}
		resp = CategoryResponse{ID: category.ID, Name: category.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RenameCategory changes a category's name, keeping names unique
func (s *ReferenceService) RenameCategory(ctx context.Context, id uuid.UUID, req NameRequest) (*CategoryResponse, error) {
	var resp CategoryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		category, err := repos.CategoryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		existing, err := repos.CategoryRepo().FindByName(ctx, req.Name)
		if err != nil && err != shared.ErrNotFound {
			return err
		}
		if existing != nil && existing.ID != id {
			return shared.NewDomainError("VALIDATION_ERROR", "A category with this name already exists")
		}
		if err := category.Rename(req.Name); err != nil {
			return err
		}
		if err := repos.CategoryRepo().Save(ctx, category); err != nil {
			return err
		}
		resp = CategoryResponse{ID: category.ID, Name: category.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCategories returns all categories
func (s *ReferenceService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	var responses []CategoryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		categories, err := repos.CategoryRepo().FindAll(ctx)
		if err != nil {
			return err
		}
		responses = make([]CategoryResponse, 0, len(categories))
		for _, c := range categories {
			responses = append(responses, CategoryResponse{ID: c.ID, Name: c.Name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// DeleteCategory removes a category that has no subcategories left
func (s *ReferenceService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.CategoryRepo().FindByID(ctx, id); err != nil {
			return err
		}
		subcategories, err := repos.SubcategoryRepo().FindByCategory(ctx, id)
		if err != nil {
			return err
		}
		if len(subcategories) > 0 {
			return shared.NewDomainError("INVALID_STATE", "Category still has subcategories")
		}
		return repos.CategoryRepo().Delete(ctx, id)
	})
}

// ===================== Subcategories =====================

// CreateSubcategory creates a subcategory, unique per category
func (s *ReferenceService) CreateSubcategory(ctx context.Context, req SubcategoryRequest) (*SubcategoryResponse, error) {
	var resp SubcategoryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.CategoryRepo().FindByID(ctx, req.CategoryID); err != nil {
			return err
		}
		existing, err := repos.SubcategoryRepo().FindByCategoryAndName(ctx, req.CategoryID, req.Name)
		if err != nil && err != shared.ErrNotFound {
			return err
		}
		if existing != nil {
			return shared.NewDomainError("VALIDATION_ERROR", "A subcategory with this name already exists in the category")
		}

		subcategory, err := catalog.NewSubcategory(req.CategoryID, req.Name)
		if err != nil {
			return err
		}
		if err := repos.SubcategoryRepo().Save(ctx, subcategory); err != nil {
			return err
		}
		resp = SubcategoryResponse{ID: subcategory.ID, CategoryID: subcategory.CategoryID, Name: subcategory.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSubcategories returns subcategories, optionally scoped to one category
func (s *ReferenceService) ListSubcategories(ctx context.Context, categoryID *uuid.UUID) ([]SubcategoryResponse, error) {
	var responses []SubcategoryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var (
			subcategories []catalog.Subcategory
			err           error
		)
		if categoryID != nil {
			subcategories, err = repos.SubcategoryRepo().FindByCategory(ctx, *categoryID)
		} else {
			subcategories, err = repos.SubcategoryRepo().FindAll(ctx)
		}
		if err != nil {
			return err
		}
		responses = make([]SubcategoryResponse, 0, len(subcategories))
		for _, sc := range subcategories {
			responses = append(responses, SubcategoryResponse{ID: sc.ID, CategoryID: sc.CategoryID, Name: sc.Name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// DeleteSubcategory removes a subcategory
func (s *ReferenceService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.SubcategoryRepo().FindByID(ctx, id); err != nil {
			return err
		}
		return repos.SubcategoryRepo().Delete(ctx, id)
	})
}

// ===================== Suppliers =====================

// CreateSupplier creates a supplier
func (s *ReferenceService) CreateSupplier(ctx context.Context, req NameRequest) (*SupplierResponse, error) {
	var resp SupplierResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		supplier, err := catalog.NewSupplier(req.Name)
		if err != nil {
			return err
		}
		if err := repos.SupplierRepo().Save(ctx, supplier); err != nil {
			return err
		}
		resp = SupplierResponse{ID: supplier.ID, Name: supplier.Name, Active: supplier.Active}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RenameSupplier changes a supplier's name
func (s *ReferenceService) RenameSupplier(ctx context.Context, id uuid.UUID, req NameRequest) (*SupplierResponse, error) {
	var resp SupplierResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		supplier, err := repos.SupplierRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := supplier.Rename(req.Name); err != nil {
			return err
		}
		if err := repos.SupplierRepo().Save(ctx, supplier); err != nil {
			return err
		}
		resp = SupplierResponse{ID: supplier.ID, Name: supplier.Name, Active: supplier.Active}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSuppliers returns suppliers, optionally active ones only
func (s *ReferenceService) ListSuppliers(ctx context.Context, activeOnly bool) ([]SupplierResponse, error) {
	var responses []SupplierResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		suppliers, err := repos.SupplierRepo().FindAll(ctx, activeOnly)
		if err != nil {
			return err
		}
		responses = make([]SupplierResponse, 0, len(suppliers))
		for _, sp := range suppliers {
			responses = append(responses, SupplierResponse{ID: sp.ID, Name: sp.Name, Active: sp.Active})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// DeactivateSupplier hides a supplier from selection lists
func (s *ReferenceService) DeactivateSupplier(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		supplier, err := repos.SupplierRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		supplier.Deactivate()
		return repos.SupplierRepo().Save(ctx, supplier)
	})
}

// ===================== Brands =====================

// CreateBrand creates a brand with a unique name
func (s *ReferenceService) CreateBrand(ctx context.Context, req NameRequest) (*BrandResponse, error) {
	var resp BrandResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.BrandRepo().FindByName(ctx, req.Name)
		if err != nil && err != shared.ErrNotFound {
			return err
		}
		if existing != nil {
			return shared.NewDomainError("VALIDATION_ERROR", "A brand with this name already exists")
		}

		brand, err := catalog.NewBrand(req.Name)
		if err != nil {
			return err
		}
		if err := repos.BrandRepo().Save(ctx, brand); err != nil {
			return err
		}
		resp = BrandResponse{ID: brand.ID, Name: brand.Name, Active: brand.Active}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RenameBrand changes a brand's name, keeping names unique
func (s *ReferenceService) RenameBrand(ctx context.Context, id uuid.UUID, req NameRequest) (*BrandResponse, error) {
	var resp BrandResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.BrandRepo().FindByName(ctx, req.Name)
		if err != nil && err != shared.ErrNotFound {
			return err
		}
		if existing != nil && existing.ID != id {
			return shared.NewDomainError("VALIDATION_ERROR", "A brand with this name already exists")
		}

		brand, err := repos.BrandRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := brand.Rename(req.Name); err != nil {
			return err
		}
		if err := repos.BrandRepo().Save(ctx, brand); err != nil {
			return err
		}
		resp = BrandResponse{ID: brand.ID, Name: brand.Name, Active: brand.Active}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListBrands returns brands, optionally active ones only
func (s *ReferenceService) ListBrands(ctx context.Context, activeOnly bool) ([]BrandResponse, error) {
	var responses []BrandResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		brands, err := repos.BrandRepo().FindAll(ctx, activeOnly)
		if err != nil {
			return err
		}
		responses = make([]BrandResponse, 0, len(brands))
		for _, b := range brands {
			responses = append(responses, BrandResponse{ID: b.ID, Name: b.Name, Active: b.Active})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// DeactivateBrand hides a brand from selection lists
func (s *ReferenceService) DeactivateBrand(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		brand, err := repos.BrandRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		brand.Deactivate()
		return repos.BrandRepo().Save(ctx, brand)
	})
}
