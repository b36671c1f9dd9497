package catalog

import (
	"time"

	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Product carries the purchase data the pricing calculator works on, the
// operator-entered sale data, and the on-hand stock quantity adjusted by the
// movement ledger. UnitPurchasePrice and SuggestedSalePrice are derived and
// recomputed on every save; FinalSalePrice is operator-entered and may
// diverge from the suggestion.
type Product struct {
	shared.BaseAggregateRoot
	SubcategoryID uuid.UUID  `json:"subcategory_id"`
	SupplierID    *uuid.UUID `json:"supplier_id"`
	BrandID       *uuid.UUID `json:"brand_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`

	PurchaseType            PurchaseType    `json:"purchase_type"`
	UnitsPerPackage         *int            `json:"units_per_package"`
	PackagePurchasePrice    decimal.Decimal `json:"package_purchase_price"`
	PurchaseDiscountPercent decimal.Decimal `json:"purchase_discount_percent"`
	UnitPurchasePrice       decimal.Decimal `json:"unit_purchase_price"`

	SaleType            SaleType        `json:"sale_type"`
	ProfitMarginPercent decimal.Decimal `json:"profit_margin_percent"`
	SuggestedSalePrice  decimal.Decimal `json:"suggested_sale_price"`
	FinalSalePrice      decimal.Decimal `json:"final_sale_price"`

	StockQuantity int             `json:"stock_quantity"`
	LastPurchase  time.Time       `json:"last_purchase"`
	Active        bool            `json:"active"`
	Movements     []StockMovement `json:"-"`
}

// NewProduct creates a product and computes its derived prices
func NewProduct(
	subcategoryID uuid.UUID,
	supplierID, brandID *uuid.UUID,
	name, description string,
	purchaseType PurchaseType,
	unitsPerPackage *int,
	packagePurchasePrice, purchaseDiscountPercent decimal.Decimal,
	saleType SaleType,
	profitMarginPercent, finalSalePrice decimal.Decimal,
) (*Product, error) {
	if subcategoryID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Subcategory is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product name cannot exceed 200 characters")
	}
	if !purchaseType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Purchase type is not valid")
	}
	if !saleType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Sale type is not valid")
	}

	product := &Product{
		BaseAggregateRoot:       shared.NewBaseAggregateRoot(),
		SubcategoryID:           subcategoryID,
		SupplierID:              supplierID,
		BrandID:                 brandID,
		Name:                    name,
		Description:             description,
		PurchaseType:            purchaseType,
		UnitsPerPackage:         unitsPerPackage,
		PackagePurchasePrice:    packagePurchasePrice,
		PurchaseDiscountPercent: purchaseDiscountPercent,
		SaleType:                saleType,
		ProfitMarginPercent:     profitMarginPercent,
		FinalSalePrice:          finalSalePrice,
		LastPurchase:            time.Now(),
		Active:                  true,
	}

	if err := product.ComputePrices(); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateDetails replaces the descriptive fields and classification
func (p *Product) UpdateDetails(subcategoryID uuid.UUID, supplierID, brandID *uuid.UUID, name, description string) error {
	if subcategoryID == uuid.Nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Subcategory is required")
	}
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot exceed 200 characters")
	}
	p.SubcategoryID = subcategoryID
	p.SupplierID = supplierID
	p.BrandID = brandID
	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	return nil
}

// UpdatePurchaseData replaces purchase fields and recomputes derived prices
func (p *Product) UpdatePurchaseData(purchaseType PurchaseType, unitsPerPackage *int, packagePurchasePrice, purchaseDiscountPercent decimal.Decimal) error {
	if !purchaseType.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "Purchase type is not valid")
	}
	p.PurchaseType = purchaseType
	p.UnitsPerPackage = unitsPerPackage
	p.PackagePurchasePrice = packagePurchasePrice
	p.PurchaseDiscountPercent = purchaseDiscountPercent
	p.LastPurchase = time.Now()
	return p.ComputePrices()
}

// UpdateSaleData replaces sale fields and recomputes the suggested price
func (p *Product) UpdateSaleData(saleType SaleType, profitMarginPercent, finalSalePrice decimal.Decimal) error {
	if !saleType.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "Sale type is not valid")
	}
	p.SaleType = saleType
	p.ProfitMarginPercent = profitMarginPercent
	p.FinalSalePrice = finalSalePrice
	return p.ComputePrices()
}

// ComputePrices derives UnitPurchasePrice and SuggestedSalePrice from the
// purchase and sale fields:
//
//	unit  = package / unitsPerPackage   (Box and Bag purchases)
//	unit *= 1 - discount/100            (when a discount applies)
//	suggested = unit * (1 + margin/100)
//
// Box/Bag purchases without a positive unitsPerPackage are rejected before
// any division happens.
func (p *Product) ComputePrices() error {
	if p.PackagePurchasePrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Purchase price cannot be negative")
	}

	unit := p.PackagePurchasePrice
	if p.PurchaseType.IsPackaged() {
		if p.UnitsPerPackage == nil || *p.UnitsPerPackage <= 0 {
			return shared.NewDomainError("VALIDATION_ERROR", "Units per package is required for box and bag purchases")
		}
		unit = unit.Div(decimal.NewFromInt(int64(*p.UnitsPerPackage)))
	}
	if p.PurchaseDiscountPercent.IsPositive() {
		unit = unit.Mul(decimal.NewFromInt(1).Sub(p.PurchaseDiscountPercent.Div(oneHundred)))
	}

	p.UnitPurchasePrice = unit.Round(2)
	p.SuggestedSalePrice = unit.Mul(decimal.NewFromInt(1).Add(p.ProfitMarginPercent.Div(oneHundred))).Round(2)
	p.UpdatedAt = time.Now()
	return nil
}

// RecordMovement appends a ledger entry and adjusts the on-hand quantity.
// Out movements larger than the on-hand quantity are rejected.
func (p *Product) RecordMovement(movementType MovementType, quantity int, note string) (*StockMovement, error) {
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Movement type is not valid")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Movement quantity must be positive")
	}
	if movementType == MovementTypeOut && quantity > p.StockQuantity {
		return nil, shared.ErrInsufficientStock
	}

	movement := NewStockMovement(p.ID, movementType, quantity, note)
	if movementType == MovementTypeIn {
		p.StockQuantity += quantity
	} else {
		p.StockQuantity -= quantity
	}
	p.Movements = append(p.Movements, *movement)
	p.UpdatedAt = time.Now()

	return movement, nil
}

// Deactivate hides the product from listings without removing it
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// Activate makes the product visible again
func (p *Product) Activate() {
	p.Active = true
	p.UpdatedAt = time.Now()
}
