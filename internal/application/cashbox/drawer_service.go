package cashbox

import (
	"context"
	"time"

	"github.com/cantina/backend/internal/domain/cashbox"
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DrawerService provides application-level drawer lifecycle and movement
// operations. Lifecycle operations that touch the general balance run inside
// a transaction scope so the drawer write and the balance write commit
// together.
type DrawerService struct {
	scope  TransactionScope
	clock  Clock
	logger *zap.Logger
}

// NewDrawerService creates a new DrawerService
func NewDrawerService(scope TransactionScope, clock Clock, logger *zap.Logger) *DrawerService {
	return &DrawerService{
		scope:  scope,
		clock:  clock,
		logger: logger,
	}
}

// OpenDrawer opens a normal drawer for a (date, shift, level) slot. Only one
// drawer may be open at a time across the whole system, and a slot can be
// occupied once. Secondary drawers inherit the general balance as their
// opening balance; primary drawers always open at zero.
func (s *DrawerService) OpenDrawer(ctx context.Context, req OpenDrawerRequest) (*DrawerResponse, error) {
	shift := cashbox.Shift(req.Shift)
	level := cashbox.Level(req.Level)

	var resp DrawerResponse
	var drawer *cashbox.Drawer
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		// The balance singleton doubles as the lifecycle lock: holding its
		// row until commit serializes open, close and delete, so two
		// transactions cannot both pass the HasOpen check.
		balance, err := repos.BalanceRepo().GetForUpdate(ctx)
		if err != nil {
			return err
		}

		hasOpen, err := repos.DrawerRepo().HasOpen(ctx)
		if err != nil {
			return err
		}
		if hasOpen {
			return cashbox.ErrDrawerConflict
		}

		exists, err := repos.DrawerRepo().ExistsBySlot(ctx, req.Date, shift, level, false)
		if err != nil {
			return err
		}
		if exists {
			return cashbox.ErrDrawerConflict
		}

		opening := decimal.Zero
		if level == cashbox.LevelSecondary {
			opening = balance.Amount
		}

		drawer, err = cashbox.NewDrawer(req.Date, shift, level, opening)
		if err != nil {
			return err
		}
		if err := repos.DrawerRepo().Save(ctx, drawer); err != nil {
			return err
		}

		resp = toDrawerResponse(drawer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("drawer opened",
		zap.String("drawer_id", resp.ID.String()),
		zap.String("shift", resp.Shift),
		zap.String("level", resp.Level))
	s.publishEvents(drawer)

	return &resp, nil
}

// OpenExtraDrawer opens an extra drawer for today. A slot is eligible only
// when its normal drawer for today is already closed and no extra drawer
// occupies the slot yet. Extra drawers always open at zero.
func (s *DrawerService) OpenExtraDrawer(ctx context.Context, req OpenExtraDrawerRequest) (*DrawerResponse, error) {
	shift := cashbox.Shift(req.Shift)
	level := cashbox.Level(req.Level)
	today := s.clock.Now()

	var resp DrawerResponse
	var drawer *cashbox.Drawer
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		// Extra drawers never read the balance amount, but the row lock
		// still serializes the HasOpen check against concurrent opens.
		if _, err := repos.BalanceRepo().GetForUpdate(ctx); err != nil {
			return err
		}

		hasOpen, err := repos.DrawerRepo().HasOpen(ctx)
		if err != nil {
			return err
		}
		if hasOpen {
			return cashbox.ErrDrawerConflict
		}

		normal, err := repos.DrawerRepo().FindBySlot(ctx, today, shift, level, false)
		if err != nil {
			if err == shared.ErrNotFound {
				return cashbox.ErrExtraDrawerNotEligible
			}
			return err
		}
		if !normal.Closed {
			return cashbox.ErrExtraDrawerNotEligible
		}

		exists, err := repos.DrawerRepo().ExistsBySlot(ctx, today, shift, level, true)
		if err != nil {
			return err
		}
		if exists {
			return cashbox.ErrExtraDrawerNotEligible
		}

		drawer, err = cashbox.NewExtraDrawer(today, shift, level)
		if err != nil {
			return err
		}
		if err := repos.DrawerRepo().Save(ctx, drawer); err != nil {
			return err
		}

		resp = toDrawerResponse(drawer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("extra drawer opened",
		zap.String("drawer_id", resp.ID.String()),
		zap.String("shift", resp.Shift),
		zap.String("level", resp.Level))
	s.publishEvents(drawer)

	return &resp, nil
}

// GetDrawer returns a drawer with all its movements
func (s *DrawerService) GetDrawer(ctx context.Context, id uuid.UUID) (*DrawerResponse, error) {
	var resp DrawerResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		drawer, err := repos.DrawerRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		resp = toDrawerResponse(drawer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListDrawers returns drawers, optionally filtered to a single date, newest first
func (s *DrawerService) ListDrawers(ctx context.Context, date *time.Time) ([]DrawerResponse, error) {
	var responses []DrawerResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		drawers, err := repos.DrawerRepo().FindAll(ctx, cashbox.DrawerFilter{Date: date})
		if err != nil {
			return err
		}
		responses = make([]DrawerResponse, 0, len(drawers))
		for i := range drawers {
			responses = append(responses, toDrawerResponse(&drawers[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// RecordRecess records recess income on an open drawer. A zero number asks
// for the next free slot.
func (s *DrawerService) RecordRecess(ctx context.Context, drawerID uuid.UUID, req RecordRecessRequest) (*DrawerResponse, error) {
	return s.mutateDrawer(ctx, drawerID, func(drawer *cashbox.Drawer) error {
		number := req.Number
		if number == 0 {
			number = drawer.NextRecessNumber()
		}
		_, err := drawer.AddRecess(number, req.Amount)
		return err
	})
}

// UpdateRecess changes the amount of an existing recess entry
func (s *DrawerService) UpdateRecess(ctx context.Context, drawerID, recessID uuid.UUID, req UpdateRecessRequest) (*DrawerResponse, error) {
	return s.mutateDrawer(ctx, drawerID, func(drawer *cashbox.Drawer) error {
		return drawer.UpdateRecess(recessID, req.Amount)
	})
}

// DeleteRecess removes a recess entry and frees its slot
func (s *DrawerService) DeleteRecess(ctx context.Context, drawerID, recessID uuid.UUID) (*DrawerResponse, error) {
	return s.mutateDrawer(ctx, drawerID, func(drawer *cashbox.Drawer) error {
		return drawer.RemoveRecess(recessID)
	})
}

// RecordSpecialEvent records special event income on an open normal drawer
func (s *DrawerService) RecordSpecialEvent(ctx context.Context, drawerID uuid.UUID, req RecordSpecialEventRequest) (*DrawerResponse, error) {
	return s.mutateDrawer(ctx, drawerID, func(drawer *cashbox.Drawer) error {
		_, err := drawer.AddSpecialEvent(req.Description, req.Amount)
		return err
	})
}

// RecordSupplierPayment records a supplier payment on an open secondary drawer
func (s *DrawerService) RecordSupplierPayment(ctx context.Context, drawerID uuid.UUID, req SupplierPaymentRequest) (*DrawerResponse, error) {
	return s.mutateDrawer(ctx, drawerID, func(drawer *cashbox.Drawer) error {
		_, err := drawer.AddSupplierPayment(req.SupplierID, req.Amount, req.ReceiptNumber, req.Note)
		return err
	})
}

// UpdateSupplierPayment changes an existing supplier payment entry
func (s *DrawerService) UpdateSupplierPayment(ctx context.Context, drawerID, paymentID uuid.UUID, req SupplierPaymentRequest) (*DrawerResponse, error) {
	return s.mutateDrawer(ctx, drawerID, func(drawer *cashbox.Drawer) error {
		return drawer.UpdateSupplierPayment(paymentID, req.SupplierID, req.Amount, req.ReceiptNumber, req.Note)
	})
}

// DeleteSupplierPayment removes a supplier payment entry
func (s *DrawerService) DeleteSupplierPayment(ctx context.Context, drawerID, paymentID uuid.UUID) (*DrawerResponse, error) {
	return s.mutateDrawer(ctx, drawerID, func(drawer *cashbox.Drawer) error {
		return drawer.RemoveSupplierPayment(paymentID)
	})
}

// CloseDrawer closes a drawer and folds its delta (partial minus opening)
// into the general balance, atomically.
func (s *DrawerService) CloseDrawer(ctx context.Context, drawerID uuid.UUID) (*CloseDrawerResponse, error) {
	var resp CloseDrawerResponse
	var drawer *cashbox.Drawer
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		// Lock the balance row before reading the drawer so concurrent
		// closes fold their deltas one after the other.
		balance, err := repos.BalanceRepo().GetForUpdate(ctx)
		if err != nil {
			return err
		}

		drawer, err = repos.DrawerRepo().FindByID(ctx, drawerID)
		if err != nil {
			return err
		}

		delta, err := drawer.Close()
		if err != nil {
			return err
		}
		balance.Add(delta)

		if err := repos.DrawerRepo().Save(ctx, drawer); err != nil {
			return err
		}
		if err := repos.BalanceRepo().Save(ctx, balance); err != nil {
			return err
		}

		resp = CloseDrawerResponse{
			Drawer:         toDrawerResponse(drawer),
			Delta:          delta,
			GeneralBalance: balance.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("drawer closed",
		zap.String("drawer_id", drawerID.String()),
		zap.String("delta", resp.Delta.String()),
		zap.String("general_balance", resp.GeneralBalance.String()))
	s.publishEvents(drawer)

	return &resp, nil
}

// DeleteExtraDrawer deletes an extra drawer and reverses its net impact on
// the general balance. Normal drawers cannot be deleted.
func (s *DrawerService) DeleteExtraDrawer(ctx context.Context, drawerID uuid.UUID) (*DeleteExtraDrawerResponse, error) {
	var resp DeleteExtraDrawerResponse
	var drawer *cashbox.Drawer
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		balance, err := repos.BalanceRepo().GetForUpdate(ctx)
		if err != nil {
			return err
		}

		drawer, err = repos.DrawerRepo().FindByID(ctx, drawerID)
		if err != nil {
			return err
		}
		if !drawer.IsExtra {
			return shared.ErrNotPermitted
		}

		impact := drawer.NetImpact()
		balance.Subtract(impact)
		drawer.MarkDeleted(impact)

		if err := repos.DrawerRepo().Delete(ctx, drawer.ID); err != nil {
			return err
		}
		if err := repos.BalanceRepo().Save(ctx, balance); err != nil {
			return err
		}

		resp = DeleteExtraDrawerResponse{
			NetImpact:      impact,
			GeneralBalance: balance.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("extra drawer deleted",
		zap.String("drawer_id", drawerID.String()),
		zap.String("net_impact", resp.NetImpact.String()))
	s.publishEvents(drawer)

	return &resp, nil
}

// Purge deletes every drawer with its movements and resets the general
// balance to zero. This is the season-end wipe.
func (s *DrawerService) Purge(ctx context.Context) error {
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		balance, err := repos.BalanceRepo().GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if err := repos.DrawerRepo().DeleteAll(ctx); err != nil {
			return err
		}
		balance.Set(decimal.Zero)
		return repos.BalanceRepo().Save(ctx, balance)
	})
	if err != nil {
		return err
	}

	s.logger.Warn("all drawers purged, general balance reset")
	return nil
}

// publishEvents emits the aggregate's pending lifecycle events to the log
// stream after commit and clears them. Events raised inside a rolled-back
// transaction never reach this point.
func (s *DrawerService) publishEvents(drawer *cashbox.Drawer) {
	if drawer == nil {
		return
	}
	for _, event := range drawer.GetDomainEvents() {
		s.logger.Info("domain event",
			zap.String("event_type", event.EventType()),
			zap.String("event_id", event.EventID().String()),
			zap.String("aggregate_id", event.AggregateID().String()))
	}
	drawer.ClearDomainEvents()
}

func (s *DrawerService) mutateDrawer(ctx context.Context, drawerID uuid.UUID, fn func(drawer *cashbox.Drawer) error) (*DrawerResponse, error) {
	var resp DrawerResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		drawer, err := repos.DrawerRepo().FindByID(ctx, drawerID)
		if err != nil {
			return err
		}
		if err := fn(drawer); err != nil {
			return err
		}
		if err := repos.DrawerRepo().Save(ctx, drawer); err != nil {
			return err
		}
		resp = toDrawerResponse(drawer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
