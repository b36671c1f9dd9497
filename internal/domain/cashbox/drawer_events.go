package cashbox

import (
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the drawer aggregate
const (
	EventTypeDrawerOpened      = "cashbox.drawer.opened"
	EventTypeDrawerClosed      = "cashbox.drawer.closed"
	EventTypeExtraDrawerDelete = "cashbox.drawer.extra_deleted"
)

// DrawerOpenedEvent is raised when a drawer is opened
type DrawerOpenedEvent struct {
	shared.BaseDomainEvent
	Shift          Shift           `json:"shift"`
	Level          Level           `json:"level"`
	IsExtra        bool            `json:"is_extra"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// NewDrawerOpenedEvent creates a DrawerOpenedEvent
func NewDrawerOpenedEvent(d *Drawer) *DrawerOpenedEvent {
	return &DrawerOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDrawerOpened, "Drawer", d.ID),
		Shift:           d.Shift,
		Level:           d.Level,
		IsExtra:         d.IsExtra,
		OpeningBalance:  d.OpeningBalance,
	}
}

// DrawerClosedEvent is raised when a drawer is closed and its delta folded
// into the general balance
type DrawerClosedEvent struct {
	shared.BaseDomainEvent
	PartialBalance decimal.Decimal `json:"partial_balance"`
	Delta          decimal.Decimal `json:"delta"`
}

// NewDrawerClosedEvent creates a DrawerClosedEvent
func NewDrawerClosedEvent(d *Drawer, delta decimal.Decimal) *DrawerClosedEvent {
	return &DrawerClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDrawerClosed, "Drawer", d.ID),
		PartialBalance:  d.PartialBalance,
		Delta:           delta,
	}
}

// ExtraDrawerDeletedEvent is raised when an extra drawer is permanently
// deleted and its net impact reversed out of the general balance
type ExtraDrawerDeletedEvent struct {
	shared.BaseDomainEvent
	NetImpact decimal.Decimal `json:"net_impact"`
}

// NewExtraDrawerDeletedEvent creates an ExtraDrawerDeletedEvent
func NewExtraDrawerDeletedEvent(d *Drawer, netImpact decimal.Decimal) *ExtraDrawerDeletedEvent {
	return &ExtraDrawerDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExtraDrawerDelete, "Drawer", d.ID),
		NetImpact:       netImpact,
	}
}
