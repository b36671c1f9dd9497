package models

import (
	"time"

	"github.com/cantina/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel is the GORM model for product categories
type CategoryModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName specifies the table name for CategoryModel
func (CategoryModel) TableName() string {
	return "categories"
}

// SubcategoryModel is the GORM model for product subcategories, unique per category
type SubcategoryModel struct {
	BaseModel
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subcategories_category_name"`
	Name       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_subcategories_category_name"`
}

// TableName specifies the table name for SubcategoryModel
func (SubcategoryModel) TableName() string {
	return "subcategories"
}

// SupplierCatalogModel is the GORM model for suppliers
type SupplierCatalogModel struct {
	BaseModel
	Name   string `gorm:"type:varchar(200);not null"`
	Active bool   `gorm:"not null;default:true;index"`
}

// TableName specifies the table name for SupplierCatalogModel
func (SupplierCatalogModel) TableName() string {
	return "suppliers"
}

// BrandModel is the GORM model for brands
type BrandModel struct {
	BaseModel
	Name   string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Active bool   `gorm:"not null;default:true;index"`
}

// TableName specifies the table name for BrandModel
func (BrandModel) TableName() string {
	return "brands"
}

// ProductModel is the GORM model for products
type ProductModel struct {
	AggregateModel
	SubcategoryID uuid.UUID  `gorm:"type:uuid;not null;index"`
	SupplierID    *uuid.UUID `gorm:"type:uuid;index"`
	BrandID       *uuid.UUID `gorm:"type:uuid;index"`
	Name          string     `gorm:"type:varchar(200);not null;index"`
	Description   string     `gorm:"type:text"`

	PurchaseType            string          `gorm:"type:varchar(1);not null"`
	UnitsPerPackage         *int            `gorm:""`
	PackagePurchasePrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PurchaseDiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	UnitPurchasePrice       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	SaleType            string          `gorm:"type:varchar(1);not null"`
	ProfitMarginPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	SuggestedSalePrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FinalSalePrice      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	StockQuantity int       `gorm:"not null;default:0"`
	LastPurchase  time.Time `gorm:"not null"`
	Active        bool      `gorm:"not null;default:true;index"`

	Movements []StockMovementModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ProductModel
func (ProductModel) TableName() string {
	return "products"
}

// StockMovementModel is the GORM model for the append-only stock ledger
type StockMovementModel struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(3);not null"`
	Quantity  int       `gorm:"not null"`
	Note      string    `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for StockMovementModel
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// ToDomain converts CategoryModel to the domain entity
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{BaseEntity: m.BaseModel.ToDomain(), Name: m.Name}
}

// FromDomain populates CategoryModel from the domain entity
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
}

// ToDomain converts SubcategoryModel to the domain entity
func (m *SubcategoryModel) ToDomain() *catalog.Subcategory {
	return &catalog.Subcategory{BaseEntity: m.BaseModel.ToDomain(), CategoryID: m.CategoryID, Name: m.Name}
}

// FromDomain populates SubcategoryModel from the domain entity
func (m *SubcategoryModel) FromDomain(s *catalog.Subcategory) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.CategoryID = s.CategoryID
	m.Name = s.Name
}

// ToDomain converts SupplierCatalogModel to the domain entity
func (m *SupplierCatalogModel) ToDomain() *catalog.Supplier {
	return &catalog.Supplier{BaseEntity: m.BaseModel.ToDomain(), Name: m.Name, Active: m.Active}
}

// FromDomain populates SupplierCatalogModel from the domain entity
func (m *SupplierCatalogModel) FromDomain(s *catalog.Supplier) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.Active = s.Active
}

// ToDomain converts BrandModel to the domain entity
func (m *BrandModel) ToDomain() *catalog.Brand {
	return &catalog.Brand{BaseEntity: m.BaseModel.ToDomain(), Name: m.Name, Active: m.Active}
}

// FromDomain populates BrandModel from the domain entity
func (m *BrandModel) FromDomain(b *catalog.Brand) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.Name = b.Name
	m.Active = b.Active
}

// ToDomain converts ProductModel to the domain aggregate. The movement
// ledger is loaded separately; Movements here carry only preloaded rows.
func (m *ProductModel) ToDomain() *catalog.Product {
	product := &catalog.Product{
		BaseAggregateRoot:       m.ToAggregateRoot(),
		SubcategoryID:           m.SubcategoryID,
		SupplierID:              m.SupplierID,
		BrandID:                 m.BrandID,
		Name:                    m.Name,
		Description:             m.Description,
		PurchaseType:            catalog.PurchaseType(m.PurchaseType),
		UnitsPerPackage:         m.UnitsPerPackage,
		PackagePurchasePrice:    m.PackagePurchasePrice,
		PurchaseDiscountPercent: m.PurchaseDiscountPercent,
		UnitPurchasePrice:       m.UnitPurchasePrice,
		SaleType:                catalog.SaleType(m.SaleType),
		ProfitMarginPercent:     m.ProfitMarginPercent,
		SuggestedSalePrice:      m.SuggestedSalePrice,
		FinalSalePrice:          m.FinalSalePrice,
		StockQuantity:           m.StockQuantity,
		LastPurchase:            m.LastPurchase,
		Active:                  m.Active,
	}
	return product
}

// FromDomain populates ProductModel from the domain aggregate. The movement
// ledger is append-only and written through its own repository path, so
// Movements are not mapped here.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.SubcategoryID = p.SubcategoryID
	m.SupplierID = p.SupplierID
	m.BrandID = p.BrandID
	m.Name = p.Name
	m.Description = p.Description
	m.PurchaseType = p.PurchaseType.String()
	m.UnitsPerPackage = p.UnitsPerPackage
	m.PackagePurchasePrice = p.PackagePurchasePrice
	m.PurchaseDiscountPercent = p.PurchaseDiscountPercent
	m.UnitPurchasePrice = p.UnitPurchasePrice
	m.SaleType = p.SaleType.String()
	m.ProfitMarginPercent = p.ProfitMarginPercent
	m.SuggestedSalePrice = p.SuggestedSalePrice
	m.FinalSalePrice = p.FinalSalePrice
	m.StockQuantity = p.StockQuantity
	m.LastPurchase = p.LastPurchase
	m.Active = p.Active
}

// ToDomain converts StockMovementModel to the domain entity
func (m *StockMovementModel) ToDomain() *catalog.StockMovement {
	return &catalog.StockMovement{
		BaseEntity: m.BaseModel.ToDomain(),
		ProductID:  m.ProductID,
		Type:       catalog.MovementType(m.Type),
		Quantity:   m.Quantity,
		Note:       m.Note,
	}
}

// FromDomain populates StockMovementModel from the domain entity
func (m *StockMovementModel) FromDomain(s *catalog.StockMovement) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.ProductID = s.ProductID
	m.Type = s.Type.String()
	m.Quantity = s.Quantity
	m.Note = s.Note
}
