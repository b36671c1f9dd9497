package cashbox

import (
	"context"
	"testing"
	"time"

	"github.com/cantina/backend/internal/domain/cashbox"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_Overview(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	mustDrawer := func(date time.Time, shift cashbox.Shift, level cashbox.Level, opening string) *cashbox.Drawer {
		d, err := cashbox.NewDrawer(date, shift, level, dec(opening))
		require.NoError(t, err)
		return d
	}

	t.Run("combines open drawers into the partial balance", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := NewReportService(NewNoOpTransactionScope(drawerRepo, balanceRepo), fixedClock{now: today})

		openSecondary := mustDrawer(today, cashbox.ShiftMorning, cashbox.LevelSecondary, "100")
		_, err := openSecondary.AddRecess(1, dec("20"))
		require.NoError(t, err)
		_, err = openSecondary.AddSupplierPayment(uuid.New(), dec("5"), "", "")
		require.NoError(t, err)

		openPrimary := mustDrawer(today, cashbox.ShiftMorning, cashbox.LevelPrimary, "0")
		_, err = openPrimary.AddRecess(1, dec("30"))
		require.NoError(t, err)

		closed := mustDrawer(yesterday, cashbox.ShiftAfternoon, cashbox.LevelPrimary, "0")
		_, err = closed.Close()
		require.NoError(t, err)

		drawers := []cashbox.Drawer{*openSecondary, *openPrimary, *closed}

		balanceRepo.On("Get", mock.Anything).Return(balanceWith("400"), nil)
		drawerRepo.On("FindAll", mock.Anything, cashbox.DrawerFilter{}).Return(drawers, nil)
		drawerRepo.On("ListDates", mock.Anything).Return([]time.Time{today, yesterday}, nil)
		drawerRepo.On("FindClosedNormalByDate", mock.Anything, today).Return([]cashbox.Drawer{}, nil)

		resp, err := service.Overview(context.Background(), nil)

		require.NoError(t, err)
		// secondary opening 100 + income 20 - payments 5, plus primary income 30
		assert.True(t, resp.PartialBalance.Equal(dec("145")), "got %s", resp.PartialBalance)
		assert.True(t, resp.HasOpenDrawers)
		assert.True(t, resp.HasAnyClosed)
		assert.True(t, resp.GeneralBalance.Amount.Equal(dec("400")))

		require.Len(t, resp.Groups, 2)
		assert.True(t, resp.Groups[0].IsToday)
		assert.Len(t, resp.Groups[0].Drawers, 2)
		assert.False(t, resp.Groups[1].IsToday)
	})

	t.Run("lists extra slots for closed normal drawers without extras", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := NewReportService(NewNoOpTransactionScope(drawerRepo, balanceRepo), fixedClock{now: today})

		closedMorning := mustDrawer(today, cashbox.ShiftMorning, cashbox.LevelSecondary, "0")
		_, err := closedMorning.Close()
		require.NoError(t, err)
		closedAfternoon := mustDrawer(today, cashbox.ShiftAfternoon, cashbox.LevelPrimary, "0")
		_, err = closedAfternoon.Close()
		require.NoError(t, err)

		balanceRepo.On("Get", mock.Anything).Return(cashbox.NewGeneralBalance(), nil)
		drawerRepo.On("FindAll", mock.Anything, cashbox.DrawerFilter{}).Return([]cashbox.Drawer{}, nil)
		drawerRepo.On("ListDates", mock.Anything).Return([]time.Time{}, nil)
		drawerRepo.On("FindClosedNormalByDate", mock.Anything, today).Return([]cashbox.Drawer{*closedMorning, *closedAfternoon}, nil)
		drawerRepo.On("ExistsBySlot", mock.Anything, today, cashbox.ShiftMorning, cashbox.LevelSecondary, true).Return(true, nil)
		drawerRepo.On("ExistsBySlot", mock.Anything, today, cashbox.ShiftAfternoon, cashbox.LevelPrimary, true).Return(false, nil)

		resp, err := service.Overview(context.Background(), nil)

		require.NoError(t, err)
		require.Len(t, resp.ExtraSlots, 1)
		assert.Equal(t, "T", resp.ExtraSlots[0].Shift)
		assert.Equal(t, "P", resp.ExtraSlots[0].Level)
	})

	t.Run("date filter is passed through", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := NewReportService(NewNoOpTransactionScope(drawerRepo, balanceRepo), fixedClock{now: today})

		balanceRepo.On("Get", mock.Anything).Return(cashbox.NewGeneralBalance(), nil)
		drawerRepo.On("FindAll", mock.Anything, cashbox.DrawerFilter{Date: &yesterday}).Return([]cashbox.Drawer{}, nil)
		drawerRepo.On("ListDates", mock.Anything).Return([]time.Time{}, nil)
		drawerRepo.On("FindClosedNormalByDate", mock.Anything, today).Return([]cashbox.Drawer{}, nil)

		resp, err := service.Overview(context.Background(), &yesterday)

		require.NoError(t, err)
		assert.False(t, resp.HasOpenDrawers)
		assert.True(t, resp.PartialBalance.Equal(decimal.Zero))
		drawerRepo.AssertExpectations(t)
	})
}
