package cashbox

import (
	"time"

	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierPayment is an expense entry paid out of a drawer to a supplier.
// Only secondary-level drawers accept them.
type SupplierPayment struct {
	shared.BaseEntity
	DrawerID      uuid.UUID       `json:"drawer_id"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	Amount        decimal.Decimal `json:"amount"`
	ReceiptNumber string          `json:"receipt_number"`
	Note          string          `json:"note"`
}

// NewSupplierPayment creates a supplier payment entry
func NewSupplierPayment(drawerID, supplierID uuid.UUID, amount decimal.Decimal, receiptNumber, note string) (*SupplierPayment, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount cannot be negative")
	}
	if len(receiptNumber) > 50 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Receipt number cannot exceed 50 characters")
	}
	return &SupplierPayment{
		BaseEntity:    shared.NewBaseEntity(),
		DrawerID:      drawerID,
		SupplierID:    supplierID,
		Amount:        amount,
		ReceiptNumber: receiptNumber,
		Note:          note,
	}, nil
}

// Update replaces the payment details
func (p *SupplierPayment) Update(supplierID uuid.UUID, amount decimal.Decimal, receiptNumber, note string) error {
	if supplierID == uuid.Nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Supplier is required")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Payment amount cannot be negative")
	}
	p.SupplierID = supplierID
	p.Amount = amount
	p.ReceiptNumber = receiptNumber
	p.Note = note
	p.UpdatedAt = time.Now()
	return nil
}
