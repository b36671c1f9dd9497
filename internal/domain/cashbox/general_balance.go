package cashbox

import (
	"time"

	"github.com/cantina/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// GeneralBalance is the single shared running total across all closed
// drawers' net contributions. Exactly one row exists; the repository creates
// it lazily with a zero amount on first access. It is mutated only at drawer
// close/delete boundaries and by the administrative adjustment operation.
type GeneralBalance struct {
	shared.BaseEntity
	Amount decimal.Decimal `json:"amount"`
}

// NewGeneralBalance creates the singleton with a zero amount
func NewGeneralBalance() *GeneralBalance {
	return &GeneralBalance{
		BaseEntity: shared.NewBaseEntity(),
		Amount:     decimal.Zero,
	}
}

// LastUpdated returns when the balance last changed
func (b *GeneralBalance) LastUpdated() time.Time {
	return b.UpdatedAt
}

// Set replaces the balance amount
func (b *GeneralBalance) Set(amount decimal.Decimal) {
	b.Amount = amount
	b.UpdatedAt = time.Now()
}

// Add increases the balance by the given amount
func (b *GeneralBalance) Add(amount decimal.Decimal) {
	b.Amount = b.Amount.Add(amount)
	b.UpdatedAt = time.Now()
}

// Subtract decreases the balance by the given amount
func (b *GeneralBalance) Subtract(amount decimal.Decimal) {
	b.Amount = b.Amount.Sub(amount)
	b.UpdatedAt = time.Now()
}
