package catalog

import (
	"time"

	"github.com/cantina/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product. A positive
// InitialStock creates the opening ledger entry alongside the product.
type CreateProductRequest struct {
	SubcategoryID           uuid.UUID       `json:"subcategory_id" binding:"required"`
	SupplierID              *uuid.UUID      `json:"supplier_id"`
	BrandID                 *uuid.UUID      `json:"brand_id"`
	Name                    string          `json:"name" binding:"required"`
	Description             string          `json:"description"`
	PurchaseType            string          `json:"purchase_type" binding:"required"`
	UnitsPerPackage         *int            `json:"units_per_package"`
	PackagePurchasePrice    decimal.Decimal `json:"package_purchase_price" binding:"required"`
	PurchaseDiscountPercent decimal.Decimal `json:"purchase_discount_percent"`
	SaleType                string          `json:"sale_type" binding:"required"`
	ProfitMarginPercent     decimal.Decimal `json:"profit_margin_percent"`
	FinalSalePrice          decimal.Decimal `json:"final_sale_price"`
	InitialStock            int             `json:"initial_stock"`
}

// UpdateProductRequest represents a request to update a product. Derived
// prices are recomputed; the stock quantity is never touched here.
type UpdateProductRequest struct {
	SubcategoryID           uuid.UUID       `json:"subcategory_id" binding:"required"`
	SupplierID              *uuid.UUID      `json:"supplier_id"`
	BrandID                 *uuid.UUID      `json:"brand_id"`
	Name                    string          `json:"name" binding:"required"`
	Description             string          `json:"description"`
	PurchaseType            string          `json:"purchase_type" binding:"required"`
	UnitsPerPackage         *int            `json:"units_per_package"`
	PackagePurchasePrice    decimal.Decimal `json:"package_purchase_price" binding:"required"`
	PurchaseDiscountPercent decimal.Decimal `json:"purchase_discount_percent"`
	SaleType                string          `json:"sale_type" binding:"required"`
	ProfitMarginPercent     decimal.Decimal `json:"profit_margin_percent"`
	FinalSalePrice          decimal.Decimal `json:"final_sale_price"`
}

// RecordMovementRequest represents a request to record a stock movement
type RecordMovementRequest struct {
	Type     string `json:"type" binding:"required,oneof=IN OUT"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Note     string `json:"note"`
}

// ProductListFilter defines filtering options for product list queries
type ProductListFilter struct {
	Search        string     `form:"search"`
	CategoryID    *uuid.UUID `form:"category_id"`
	SubcategoryID *uuid.UUID `form:"subcategory_id"`
	SupplierID    *uuid.UUID `form:"supplier_id"`
	BrandID       *uuid.UUID `form:"brand_id"`
	ActiveOnly    bool       `form:"active_only"`
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                      uuid.UUID       `json:"id"`
	SubcategoryID           uuid.UUID       `json:"subcategory_id"`
	SupplierID              *uuid.UUID      `json:"supplier_id,omitempty"`
	BrandID                 *uuid.UUID      `json:"brand_id,omitempty"`
	Name                    string          `json:"name"`
	Description             string          `json:"description,omitempty"`
	PurchaseType            string          `json:"purchase_type"`
	PurchaseTypeName        string          `json:"purchase_type_name"`
	UnitsPerPackage         *int            `json:"units_per_package,omitempty"`
	PackagePurchasePrice    decimal.Decimal `json:"package_purchase_price"`
	PurchaseDiscountPercent decimal.Decimal `json:"purchase_discount_percent"`
	UnitPurchasePrice       decimal.Decimal `json:"unit_purchase_price"`
	SaleType                string          `json:"sale_type"`
	ProfitMarginPercent     decimal.Decimal `json:"profit_margin_percent"`
	SuggestedSalePrice      decimal.Decimal `json:"suggested_sale_price"`
	FinalSalePrice          decimal.Decimal `json:"final_sale_price"`
	StockQuantity           int             `json:"stock_quantity"`
	LastPurchase            time.Time       `json:"last_purchase"`
	Active                  bool            `json:"active"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// StockMovementResponse represents a stock ledger entry in API responses
type StockMovementResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// SubcategoryResponse represents a subcategory in API responses
type SubcategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}

// BrandResponse represents a brand in API responses
type BrandResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}

// NameRequest carries the single name field used by the reference CRUD operations
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// SubcategoryRequest represents a request to create or rename a subcategory
type SubcategoryRequest struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                      p.ID,
		SubcategoryID:           p.SubcategoryID,
		SupplierID:              p.SupplierID,
		BrandID:                 p.BrandID,
		Name:                    p.Name,
		Description:             p.Description,
		PurchaseType:            p.PurchaseType.String(),
		PurchaseTypeName:        p.PurchaseType.DisplayName(),
		UnitsPerPackage:         p.UnitsPerPackage,
		PackagePurchasePrice:    p.PackagePurchasePrice,
		PurchaseDiscountPercent: p.PurchaseDiscountPercent,
		UnitPurchasePrice:       p.UnitPurchasePrice,
		SaleType:                p.SaleType.String(),
		ProfitMarginPercent:     p.ProfitMarginPercent,
		SuggestedSalePrice:      p.SuggestedSalePrice,
		FinalSalePrice:          p.FinalSalePrice,
		StockQuantity:           p.StockQuantity,
		LastPurchase:            p.LastPurchase,
		Active:                  p.Active,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

func toStockMovementResponse(m *catalog.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type.String(),
		Quantity:  m.Quantity,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}
