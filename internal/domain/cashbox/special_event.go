package cashbox

import (
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpecialEvent is an income entry for a special occasion (fair, raffle,
// celebration day). Only normal drawers accept them.
type SpecialEvent struct {
	shared.BaseEntity
	DrawerID    uuid.UUID       `json:"drawer_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewSpecialEvent creates a special event income entry
func NewSpecialEvent(drawerID uuid.UUID, description string, amount decimal.Decimal) (*SpecialEvent, error) {
	if amount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Event amount cannot be negative")
	}
	if len(description) > 255 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Event description cannot exceed 255 characters")
	}
	return &SpecialEvent{
		BaseEntity:  shared.NewBaseEntity(),
		DrawerID:    drawerID,
		Description: description,
		Amount:      amount,
	}, nil
}
