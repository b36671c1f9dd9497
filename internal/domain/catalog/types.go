package catalog

// PurchaseType represents how a product is bought from the supplier
type PurchaseType string

const (
	PurchaseTypeUnit PurchaseType = "U"
	PurchaseTypeBox  PurchaseType = "C"
	PurchaseTypeBag  PurchaseType = "B"
)

// IsValid checks if the purchase type is a valid PurchaseType
func (p PurchaseType) IsValid() bool {
	switch p {
	case PurchaseTypeUnit, PurchaseTypeBox, PurchaseTypeBag:
		return true
	}
	return false
}

// String returns the string representation of PurchaseType
func (p PurchaseType) String() string {
	return string(p)
}

// IsPackaged reports whether the purchase price covers a multi-unit package
func (p PurchaseType) IsPackaged() bool {
	return p == PurchaseTypeBox || p == PurchaseTypeBag
}

// DisplayName returns a human-readable name for the purchase type
func (p PurchaseType) DisplayName() string {
	switch p {
	case PurchaseTypeUnit:
		return "Unidad"
	case PurchaseTypeBox:
		return "Caja"
	case PurchaseTypeBag:
		return "Bolsa"
	default:
		return string(p)
	}
}

// SaleType represents how a product is sold
type SaleType string

const (
	SaleTypeUnit      SaleType = "U"
	SaleTypePromotion SaleType = "P"
)

// IsValid checks if the sale type is a valid SaleType
func (s SaleType) IsValid() bool {
	switch s {
	case SaleTypeUnit, SaleTypePromotion:
		return true
	}
	return false
}

// String returns the string representation of SaleType
func (s SaleType) String() string {
	return string(s)
}

// MovementType represents the direction of a stock movement
type MovementType string

const (
	MovementTypeIn  MovementType = "IN"
	MovementTypeOut MovementType = "OUT"
)

// IsValid checks if the movement type is a valid MovementType
func (m MovementType) IsValid() bool {
	switch m {
	case MovementTypeIn, MovementTypeOut:
		return true
	}
	return false
}

// String returns the string representation of MovementType
func (m MovementType) String() string {
	return string(m)
}
