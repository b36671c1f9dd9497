package cashbox

import (
	"time"

	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Drawer is one daily cash register instance for a (date, shift, level)
// slot, normal or extra. It is the aggregate root for all movement entries
// recorded against it; PartialBalance is a cache of ComputePartialBalance
// and is refreshed after every movement mutation.
type Drawer struct {
	shared.BaseAggregateRoot
	Date           time.Time       `json:"date"`
	Shift          Shift           `json:"shift"`
	Level          Level           `json:"level"`
	IsExtra        bool            `json:"is_extra"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	PartialBalance decimal.Decimal `json:"partial_balance"`
	Closed         bool            `json:"closed"`

	Recesses []Recess          `json:"recesses"`
	Events   []SpecialEvent    `json:"events"`
	Payments []SupplierPayment `json:"payments"`
}

// NewDrawer opens a normal drawer. openingBalance carries the current
// general balance for secondary-level drawers and must be zero for primary;
// the caller resolves that before construction.
func NewDrawer(date time.Time, shift Shift, level Level, openingBalance decimal.Decimal) (*Drawer, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Drawer date is required")
	}
	if !shift.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Shift is not valid")
	}
	if !level.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Level is not valid")
	}
	if level == LevelPrimary && !openingBalance.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Primary drawers always open with a zero balance")
	}

	drawer := &Drawer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Date:              truncateToDate(date),
		Shift:             shift,
		Level:             level,
		IsExtra:           false,
		OpeningBalance:    openingBalance,
		PartialBalance:    openingBalance,
	}

	drawer.AddDomainEvent(NewDrawerOpenedEvent(drawer))

	return drawer, nil
}

// NewExtraDrawer opens an extra drawer for today's slot. Extra drawers never
// inherit the general balance; they always start at zero.
func NewExtraDrawer(date time.Time, shift Shift, level Level) (*Drawer, error) {
	drawer, err := NewDrawer(date, shift, level, decimal.Zero)
	if err != nil {
		return nil, err
	}
	drawer.IsExtra = true
	return drawer, nil
}

// NextRecessNumber returns the next free recess slot, or 0 when exhausted
func (d *Drawer) NextRecessNumber() int {
	if d.IsExtra {
		if len(d.Recesses) == 0 {
			return FirstRecessNumber
		}
		return 0
	}
	taken := make(map[int]bool, len(d.Recesses))
	for _, r := range d.Recesses {
		taken[r.Number] = true
	}
	for n := FirstRecessNumber; n <= LastRecessNumber; n++ {
		if !taken[n] {
			return n
		}
	}
	return 0
}

// AddRecess records a recess income entry. Extra drawers admit a single
// entry pinned to slot 1 regardless of the requested number.
func (d *Drawer) AddRecess(number int, amount decimal.Decimal) (*Recess, error) {
	if d.Closed {
		return nil, ErrDrawerClosed
	}
	if d.IsExtra {
		number = FirstRecessNumber
		if len(d.Recesses) > 0 {
			return nil, ErrRecessExhausted
		}
	} else {
		if d.NextRecessNumber() == 0 {
			return nil, ErrRecessExhausted
		}
		for _, r := range d.Recesses {
			if r.Number == number {
				return nil, shared.NewDomainError("VALIDATION_ERROR", "This recess slot is already taken")
			}
		}
	}

	recess, err := NewRecess(d.ID, number, amount)
	if err != nil {
		return nil, err
	}
	d.Recesses = append(d.Recesses, *recess)
	d.RecomputePartialBalance()
	return recess, nil
}

// UpdateRecess changes the amount of an existing recess entry
func (d *Drawer) UpdateRecess(recessID uuid.UUID, amount decimal.Decimal) error {
	if d.Closed {
		return ErrDrawerClosed
	}
	for i := range d.Recesses {
		if d.Recesses[i].ID == recessID {
			if err := d.Recesses[i].UpdateAmount(amount); err != nil {
				return err
			}
			d.RecomputePartialBalance()
			return nil
		}
	}
	return shared.ErrNotFound
}

// RemoveRecess deletes a recess entry and frees its slot
func (d *Drawer) RemoveRecess(recessID uuid.UUID) error {
	if d.Closed {
		return ErrDrawerClosed
	}
	for i := range d.Recesses {
		if d.Recesses[i].ID == recessID {
			d.Recesses = append(d.Recesses[:i], d.Recesses[i+1:]...)
			d.RecomputePartialBalance()
			return nil
		}
	}
	return shared.ErrNotFound
}

// AddSpecialEvent records a special event income entry. Extra drawers do not
// accept special events.
func (d *Drawer) AddSpecialEvent(description string, amount decimal.Decimal) (*SpecialEvent, error) {
	if d.Closed {
		return nil, ErrDrawerClosed
	}
	if d.IsExtra {
		return nil, shared.ErrNotPermitted
	}

	event, err := NewSpecialEvent(d.ID, description, amount)
	if err != nil {
		return nil, err
	}
	d.Events = append(d.Events, *event)
	d.RecomputePartialBalance()
	return event, nil
}

// AddSupplierPayment records a payment to a supplier. Only secondary-level
// drawers handle supplier money, normal or extra.
func (d *Drawer) AddSupplierPayment(supplierID uuid.UUID, amount decimal.Decimal, receiptNumber, note string) (*SupplierPayment, error) {
	if d.Closed {
		return nil, ErrDrawerClosed
	}
	if d.Level != LevelSecondary {
		return nil, shared.ErrNotPermitted
	}

	payment, err := NewSupplierPayment(d.ID, supplierID, amount, receiptNumber, note)
	if err != nil {
		return nil, err
	}
	d.Payments = append(d.Payments, *payment)
	d.RecomputePartialBalance()
	return payment, nil
}

// UpdateSupplierPayment changes an existing payment entry
func (d *Drawer) UpdateSupplierPayment(paymentID, supplierID uuid.UUID, amount decimal.Decimal, receiptNumber, note string) error {
	if d.Closed {
		return ErrDrawerClosed
	}
	for i := range d.Payments {
		if d.Payments[i].ID == paymentID {
			if err := d.Payments[i].Update(supplierID, amount, receiptNumber, note); err != nil {
				return err
			}
			d.RecomputePartialBalance()
			return nil
		}
	}
	return shared.ErrNotFound
}

// RemoveSupplierPayment deletes a payment entry
func (d *Drawer) RemoveSupplierPayment(paymentID uuid.UUID) error {
	if d.Closed {
		return ErrDrawerClosed
	}
	for i := range d.Payments {
		if d.Payments[i].ID == paymentID {
			d.Payments = append(d.Payments[:i], d.Payments[i+1:]...)
			d.RecomputePartialBalance()
			return nil
		}
	}
	return shared.ErrNotFound
}

// TotalIncome sums recesses plus special events. Extra drawers carry no
// special events, so their income is recess income alone.
func (d *Drawer) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for _, r := range d.Recesses {
		total = total.Add(r.Amount)
	}
	if !d.IsExtra {
		for _, e := range d.Events {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalPayments sums supplier payments
func (d *Drawer) TotalPayments() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// ComputePartialBalance derives the running balance from the movement set:
// opening + income - payments. This is the canonical formula; the stored
// PartialBalance field is only a cache of it.
func (d *Drawer) ComputePartialBalance() decimal.Decimal {
	return d.OpeningBalance.Add(d.TotalIncome()).Sub(d.TotalPayments())
}

// RecomputePartialBalance refreshes the cached PartialBalance field and
// bumps the version so the repository can detect concurrent writes.
func (d *Drawer) RecomputePartialBalance() {
	d.PartialBalance = d.ComputePartialBalance()
	d.IncrementVersion()
	d.UpdatedAt = time.Now()
}

// Close recomputes the balance one final time, marks the drawer closed and
// returns the delta the caller must fold into the general balance.
func (d *Drawer) Close() (decimal.Decimal, error) {
	if d.Closed {
		return decimal.Zero, ErrDrawerClosed
	}

	d.RecomputePartialBalance()
	delta := d.PartialBalance.Sub(d.OpeningBalance)
	d.Closed = true

	d.AddDomainEvent(NewDrawerClosedEvent(d, delta))

	return delta, nil
}

// NetImpact is the drawer's net contribution to the general balance: total
// income minus supplier payments when the drawer handles supplier money.
// Deleting an extra drawer subtracts exactly this amount, which makes
// deletion the inverse of closing regardless of the drawer's closed state.
func (d *Drawer) NetImpact() decimal.Decimal {
	impact := d.TotalIncome()
	if d.Level == LevelSecondary {
		impact = impact.Sub(d.TotalPayments())
	}
	return impact
}

// MarkDeleted records the deletion of an extra drawer so the event reaches
// the log stream after commit. The caller computes the reversed net impact.
func (d *Drawer) MarkDeleted(netImpact decimal.Decimal) {
	d.AddDomainEvent(NewExtraDrawerDeletedEvent(d, netImpact))
}

// AcceptsPayments reports whether supplier payments may be recorded
func (d *Drawer) AcceptsPayments() bool {
	return d.Level == LevelSecondary
}

// SameSlot reports whether the drawer occupies the given (date, shift, level)
func (d *Drawer) SameSlot(date time.Time, shift Shift, level Level) bool {
	return d.Date.Equal(truncateToDate(date)) && d.Shift == shift && d.Level == level
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
