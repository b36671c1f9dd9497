package cashbox

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DrawerFilter defines filtering options for drawer list queries
type DrawerFilter struct {
	Date *time.Time
}

// DrawerRepository defines the persistence contract for the Drawer
// aggregate. Implementations load and save the drawer together with its
// movement entries, and deletion cascades to them.
type DrawerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Drawer, error)
	FindBySlot(ctx context.Context, date time.Time, shift Shift, level Level, isExtra bool) (*Drawer, error)
	ExistsBySlot(ctx context.Context, date time.Time, shift Shift, level Level, isExtra bool) (bool, error)
	FindOpen(ctx context.Context) ([]Drawer, error)
	HasOpen(ctx context.Context) (bool, error)
	FindClosedNormalByDate(ctx context.Context, date time.Time) ([]Drawer, error)
	FindAll(ctx context.Context, filter DrawerFilter) ([]Drawer, error)
	ListDates(ctx context.Context) ([]time.Time, error)
	Save(ctx context.Context, drawer *Drawer) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

// GeneralBalanceRepository owns the general balance singleton row.
// Get creates the row with a zero amount when it does not exist yet.
// GetForUpdate additionally holds the row lock for the rest of the
// transaction; lifecycle operations acquire it first so their
// check-then-write sequences serialize on the single row.
type GeneralBalanceRepository interface {
	Get(ctx context.Context) (*GeneralBalance, error)
	GetForUpdate(ctx context.Context) (*GeneralBalance, error)
	Save(ctx context.Context, balance *GeneralBalance) error
}
