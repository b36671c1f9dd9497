package cashbox

import (
	"time"

	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recess slot bounds for a normal drawer. Extra drawers admit a single
// recess entry fixed to slot 1.
const (
	FirstRecessNumber = 1
	LastRecessNumber  = 3
)

// Recess is a recess-period cash income entry belonging to a drawer.
// (drawer, number) is unique.
type Recess struct {
	shared.BaseEntity
	DrawerID uuid.UUID       `json:"drawer_id"`
	Number   int             `json:"number"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewRecess creates a recess entry for the given drawer and slot
func NewRecess(drawerID uuid.UUID, number int, amount decimal.Decimal) (*Recess, error) {
	if number < FirstRecessNumber || number > LastRecessNumber {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Recess number must be between 1 and 3")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Recess amount cannot be negative")
	}
	return &Recess{
		BaseEntity: shared.NewBaseEntity(),
		DrawerID:   drawerID,
		Number:     number,
		Amount:     amount,
	}, nil
}

// UpdateAmount replaces the recorded amount
func (r *Recess) UpdateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Recess amount cannot be negative")
	}
	r.Amount = amount
	r.UpdatedAt = time.Now()
	return nil
}
