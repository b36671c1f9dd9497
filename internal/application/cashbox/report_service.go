package cashbox

import (
	"context"
	"time"

	"github.com/cantina/backend/internal/domain/cashbox"
	"github.com/shopspring/decimal"
)

// DrawerGroup bundles the drawers of a single date for the overview listing
type DrawerGroup struct {
	Date    time.Time        `json:"date"`
	IsToday bool             `json:"is_today"`
	Drawers []DrawerResponse `json:"drawers"`
}

// ExtraSlot names a (shift, level) slot eligible for an extra drawer today
type ExtraSlot struct {
	Shift     string `json:"shift"`
	ShiftName string `json:"shift_name"`
	Level     string `json:"level"`
	LevelName string `json:"level_name"`
}

// OverviewResponse is the aggregate view behind the main register screen:
// the general balance, the combined running balance of all open drawers,
// the drawer history grouped by date and the extra drawer slots available
// today.
type OverviewResponse struct {
	GeneralBalance GeneralBalanceResponse `json:"general_balance"`
	PartialBalance decimal.Decimal        `json:"partial_balance"`
	HasOpenDrawers bool                   `json:"has_open_drawers"`
	HasAnyClosed   bool                   `json:"has_any_closed"`
	Groups         []DrawerGroup          `json:"groups"`
	ExtraSlots     []ExtraSlot            `json:"extra_slots"`
	Dates          []time.Time            `json:"dates"`
}

// ReportService builds read-only aggregate views over the drawer history
type ReportService struct {
	scope TransactionScope
	clock Clock
}

// NewReportService creates a new ReportService
func NewReportService(scope TransactionScope, clock Clock) *ReportService {
	return &ReportService{scope: scope, clock: clock}
}

// Overview assembles the register overview, optionally filtered to one date.
// The combined partial balance sums, over the open drawers only, the opening
// balances of secondary drawers plus all income minus all payments.
func (s *ReportService) Overview(ctx context.Context, dateFilter *time.Time) (*OverviewResponse, error) {
	today := truncate(s.clock.Now())

	var resp OverviewResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		balance, err := repos.BalanceRepo().Get(ctx)
		if err != nil {
			return err
		}

		drawers, err := repos.DrawerRepo().FindAll(ctx, cashbox.DrawerFilter{Date: dateFilter})
		if err != nil {
			return err
		}

		dates, err := repos.DrawerRepo().ListDates(ctx)
		if err != nil {
			return err
		}

		partial := decimal.Zero
		hasOpen := false
		hasClosed := false
		for i := range drawers {
			d := &drawers[i]
			if d.Closed {
				hasClosed = true
				continue
			}
			hasOpen = true
			if d.Level == cashbox.LevelSecondary {
				partial = partial.Add(d.OpeningBalance)
			}
			partial = partial.Add(d.TotalIncome()).Sub(d.TotalPayments())
		}

		extraSlots, err := s.extraSlots(ctx, repos, today)
		if err != nil {
			return err
		}

		resp = OverviewResponse{
			GeneralBalance: toGeneralBalanceResponse(balance),
			PartialBalance: partial,
			HasOpenDrawers: hasOpen,
			HasAnyClosed:   hasClosed,
			Groups:         groupByDate(drawers, today),
			ExtraSlots:     extraSlots,
			Dates:          dates,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// extraSlots lists today's closed normal drawers whose slot has no extra
// drawer yet.
func (s *ReportService) extraSlots(ctx context.Context, repos TransactionalRepositories, today time.Time) ([]ExtraSlot, error) {
	closed, err := repos.DrawerRepo().FindClosedNormalByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	slots := make([]ExtraSlot, 0, len(closed))
	for i := range closed {
		d := &closed[i]
		exists, err := repos.DrawerRepo().ExistsBySlot(ctx, today, d.Shift, d.Level, true)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		slots = append(slots, ExtraSlot{
			Shift:     d.Shift.String(),
			ShiftName: d.Shift.DisplayName(),
			Level:     d.Level.String(),
			LevelName: d.Level.DisplayName(),
		})
	}
	return slots, nil
}

func groupByDate(drawers []cashbox.Drawer, today time.Time) []DrawerGroup {
	var groups []DrawerGroup
	for i := range drawers {
		d := &drawers[i]
		if len(groups) == 0 || !groups[len(groups)-1].Date.Equal(d.Date) {
			groups = append(groups, DrawerGroup{
				Date:    d.Date,
				IsToday: d.Date.Equal(today),
			})
		}
		groups[len(groups)-1].Drawers = append(groups[len(groups)-1].Drawers, toDrawerResponse(d))
	}
	return groups
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
