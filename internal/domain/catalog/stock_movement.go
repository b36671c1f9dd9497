package catalog

import (
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InitialStockNote marks the In movement synthesized when a product is
// created with opening stock.
const InitialStockNote = "initial stock"

// StockMovement is an append-only ledger entry. Entries are never edited or
// deleted; corrections are made with compensating movements.
type StockMovement struct {
	shared.BaseEntity
	ProductID uuid.UUID    `json:"product_id"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Note      string       `json:"note"`
}

func NewStockMovement(productID uuid.UUID, movementType MovementType, quantity int, note string) *StockMovement {
	return &StockMovement{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Type:       movementType,
		Quantity:   quantity,
		Note:       note,
	}
}

// IsInitial reports whether this is the synthesized opening-stock entry
func (m *StockMovement) IsInitial() bool {
	return m.Type == MovementTypeIn && m.Note == InitialStockNote
}
