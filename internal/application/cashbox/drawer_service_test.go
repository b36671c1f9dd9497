package cashbox

import (
	"context"
	"testing"
	"time"

	"github.com/cantina/backend/internal/domain/cashbox"
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockDrawerRepository is a mock implementation of cashbox.DrawerRepository
type MockDrawerRepository struct {
	mock.Mock
}

func (m *MockDrawerRepository) FindByID(ctx context.Context, id uuid.UUID) (*cashbox.Drawer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cashbox.Drawer), args.Error(1)
}

func (m *MockDrawerRepository) FindBySlot(ctx context.Context, date time.Time, shift cashbox.Shift, level cashbox.Level, isExtra bool) (*cashbox.Drawer, error) {
	args := m.Called(ctx, date, shift, level, isExtra)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cashbox.Drawer), args.Error(1)
}

func (m *MockDrawerRepository) ExistsBySlot(ctx context.Context, date time.Time, shift cashbox.Shift, level cashbox.Level, isExtra bool) (bool, error) {
	args := m.Called(ctx, date, shift, level, isExtra)
	return args.Bool(0), args.Error(1)
}

func (m *MockDrawerRepository) FindOpen(ctx context.Context) ([]cashbox.Drawer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cashbox.Drawer), args.Error(1)
}

func (m *MockDrawerRepository) HasOpen(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockDrawerRepository) FindClosedNormalByDate(ctx context.Context, date time.Time) ([]cashbox.Drawer, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cashbox.Drawer), args.Error(1)
}

func (m *MockDrawerRepository) FindAll(ctx context.Context, filter cashbox.DrawerFilter) ([]cashbox.Drawer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cashbox.Drawer), args.Error(1)
}

func (m *MockDrawerRepository) ListDates(ctx context.Context) ([]time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockDrawerRepository) Save(ctx context.Context, drawer *cashbox.Drawer) error {
	args := m.Called(ctx, drawer)
	return args.Error(0)
}

func (m *MockDrawerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDrawerRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockGeneralBalanceRepository is a mock implementation of cashbox.GeneralBalanceRepository
type MockGeneralBalanceRepository struct {
	mock.Mock
}

func (m *MockGeneralBalanceRepository) Get(ctx context.Context) (*cashbox.GeneralBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cashbox.GeneralBalance), args.Error(1)
}

func (m *MockGeneralBalanceRepository) GetForUpdate(ctx context.Context) (*cashbox.GeneralBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cashbox.GeneralBalance), args.Error(1)
}

func (m *MockGeneralBalanceRepository) Save(ctx context.Context, balance *cashbox.GeneralBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

// fixedClock pins "today" for extra drawer eligibility tests
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func balanceWith(amount string) *cashbox.GeneralBalance {
	b := cashbox.NewGeneralBalance()
	b.Set(dec(amount))
	return b
}

func newService(drawerRepo *MockDrawerRepository, balanceRepo *MockGeneralBalanceRepository, now time.Time) *DrawerService {
	scope := NewNoOpTransactionScope(drawerRepo, balanceRepo)
	return NewDrawerService(scope, fixedClock{now: now}, zap.NewNop())
}

func TestDrawerService_OpenDrawer(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("secondary drawer inherits the general balance", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, date)

		drawerRepo.On("HasOpen", mock.Anything).Return(false, nil)
		drawerRepo.On("ExistsBySlot", mock.Anything, date, cashbox.ShiftMorning, cashbox.LevelSecondary, false).Return(false, nil)
		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("500"), nil)
		drawerRepo.On("Save", mock.Anything, mock.AnythingOfType("*cashbox.Drawer")).Return(nil)

		resp, err := service.OpenDrawer(context.Background(), OpenDrawerRequest{
			Date:  date,
			Shift: "M",
			Level: "S",
		})

		require.NoError(t, err)
		assert.True(t, resp.OpeningBalance.Equal(dec("500")))
		assert.True(t, resp.PartialBalance.Equal(dec("500")))
		assert.False(t, resp.IsExtra)
		drawerRepo.AssertExpectations(t)
	})

	t.Run("primary drawer opens at zero but still takes the balance lock", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, date)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("500"), nil)
		drawerRepo.On("HasOpen", mock.Anything).Return(false, nil)
		drawerRepo.On("ExistsBySlot", mock.Anything, date, cashbox.ShiftAfternoon, cashbox.LevelPrimary, false).Return(false, nil)
		drawerRepo.On("Save", mock.Anything, mock.AnythingOfType("*cashbox.Drawer")).Return(nil)

		resp, err := service.OpenDrawer(context.Background(), OpenDrawerRequest{
			Date:  date,
			Shift: "T",
			Level: "P",
		})

		require.NoError(t, err)
		assert.True(t, resp.OpeningBalance.IsZero())
		balanceRepo.AssertCalled(t, "GetForUpdate", mock.Anything)
	})

	t.Run("rejected while another drawer is open", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, date)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("HasOpen", mock.Anything).Return(true, nil)

		_, err := service.OpenDrawer(context.Background(), OpenDrawerRequest{Date: date, Shift: "M", Level: "S"})

		assert.ErrorIs(t, err, cashbox.ErrDrawerConflict)
		drawerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejected when the slot is already occupied", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, date)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("HasOpen", mock.Anything).Return(false, nil)
		drawerRepo.On("ExistsBySlot", mock.Anything, date, cashbox.ShiftMorning, cashbox.LevelSecondary, false).Return(true, nil)

		_, err := service.OpenDrawer(context.Background(), OpenDrawerRequest{Date: date, Shift: "M", Level: "S"})

		assert.ErrorIs(t, err, cashbox.ErrDrawerConflict)
	})

	t.Run("rejected with an invalid shift", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, date)

		drawerRepo.On("HasOpen", mock.Anything).Return(false, nil)
		drawerRepo.On("ExistsBySlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)

		_, err := service.OpenDrawer(context.Background(), OpenDrawerRequest{Date: date, Shift: "X", Level: "S"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})
}

func TestDrawerService_OpenExtraDrawer(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	closedNormal := func() *cashbox.Drawer {
		d, err := cashbox.NewDrawer(today, cashbox.ShiftMorning, cashbox.LevelSecondary, dec("100"))
		if err != nil {
			panic(err)
		}
		_, err = d.Close()
		if err != nil {
			panic(err)
		}
		return d
	}

	t.Run("opens when today's normal drawer is closed and no extra exists", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, today)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("HasOpen", mock.Anything).Return(false, nil)
		drawerRepo.On("FindBySlot", mock.Anything, today, cashbox.ShiftMorning, cashbox.LevelSecondary, false).Return(closedNormal(), nil)
		drawerRepo.On("ExistsBySlot", mock.Anything, today, cashbox.ShiftMorning, cashbox.LevelSecondary, true).Return(false, nil)
		drawerRepo.On("Save", mock.Anything, mock.AnythingOfType("*cashbox.Drawer")).Return(nil)

		resp, err := service.OpenExtraDrawer(context.Background(), OpenExtraDrawerRequest{Shift: "M", Level: "S"})

		require.NoError(t, err)
		assert.True(t, resp.IsExtra)
		assert.True(t, resp.OpeningBalance.IsZero())
	})

	t.Run("rejected when no normal drawer exists for the slot", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, today)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("HasOpen", mock.Anything).Return(false, nil)
		drawerRepo.On("FindBySlot", mock.Anything, today, cashbox.ShiftMorning, cashbox.LevelSecondary, false).Return(nil, shared.ErrNotFound)

		_, err := service.OpenExtraDrawer(context.Background(), OpenExtraDrawerRequest{Shift: "M", Level: "S"})

		assert.ErrorIs(t, err, cashbox.ErrExtraDrawerNotEligible)
	})

	t.Run("rejected when the normal drawer is still open", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, today)

		open, err := cashbox.NewDrawer(today, cashbox.ShiftMorning, cashbox.LevelSecondary, dec("100"))
		require.NoError(t, err)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("HasOpen", mock.Anything).Return(false, nil)
		drawerRepo.On("FindBySlot", mock.Anything, today, cashbox.ShiftMorning, cashbox.LevelSecondary, false).Return(open, nil)

		_, err = service.OpenExtraDrawer(context.Background(), OpenExtraDrawerRequest{Shift: "M", Level: "S"})

		assert.ErrorIs(t, err, cashbox.ErrExtraDrawerNotEligible)
	})

	t.Run("rejected when an extra drawer already occupies the slot", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, today)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("HasOpen", mock.Anything).Return(false, nil)
		drawerRepo.On("FindBySlot", mock.Anything, today, cashbox.ShiftMorning, cashbox.LevelSecondary, false).Return(closedNormal(), nil)
		drawerRepo.On("ExistsBySlot", mock.Anything, today, cashbox.ShiftMorning, cashbox.LevelSecondary, true).Return(true, nil)

		_, err := service.OpenExtraDrawer(context.Background(), OpenExtraDrawerRequest{Shift: "M", Level: "S"})

		assert.ErrorIs(t, err, cashbox.ErrExtraDrawerNotEligible)
	})
}

func TestDrawerService_CloseDrawer(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("folds the delta into the general balance", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, date)

		drawer, err := cashbox.NewDrawer(date, cashbox.ShiftMorning, cashbox.LevelSecondary, dec("100"))
		require.NoError(t, err)
		_, err = drawer.AddRecess(1, dec("20"))
		require.NoError(t, err)
		_, err = drawer.AddRecess(2, dec("15"))
		require.NoError(t, err)
		_, err = drawer.AddSupplierPayment(uuid.New(), dec("10"), "R-001", "")
		require.NoError(t, err)

		balance := balanceWith("100")

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balance, nil)
		drawerRepo.On("FindByID", mock.Anything, drawer.ID).Return(drawer, nil)
		drawerRepo.On("Save", mock.Anything, drawer).Return(nil)
		balanceRepo.On("Save", mock.Anything, balance).Return(nil)

		resp, err := service.CloseDrawer(context.Background(), drawer.ID)

		require.NoError(t, err)
		assert.True(t, resp.Delta.Equal(dec("25")), "got %s", resp.Delta)
		assert.True(t, resp.GeneralBalance.Equal(dec("125")))
		assert.True(t, resp.Drawer.Closed)
		drawerRepo.AssertExpectations(t)
		balanceRepo.AssertExpectations(t)
	})

	t.Run("closing twice fails and leaves the balance alone", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, date)

		drawer, err := cashbox.NewDrawer(date, cashbox.ShiftMorning, cashbox.LevelPrimary, decimal.Zero)
		require.NoError(t, err)
		_, err = drawer.Close()
		require.NoError(t, err)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("FindByID", mock.Anything, drawer.ID).Return(drawer, nil)

		_, err = service.CloseDrawer(context.Background(), drawer.ID)

		assert.ErrorIs(t, err, cashbox.ErrDrawerClosed)
		balanceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestDrawerService_DeleteExtraDrawer(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("reverses the net impact from the general balance", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, today)

		extra, err := cashbox.NewExtraDrawer(today, cashbox.ShiftMorning, cashbox.LevelSecondary)
		require.NoError(t, err)
		_, err = extra.AddRecess(1, dec("30"))
		require.NoError(t, err)
		_, err = extra.AddSupplierPayment(uuid.New(), dec("12"), "", "")
		require.NoError(t, err)

		balance := balanceWith("200")

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balance, nil)
		drawerRepo.On("FindByID", mock.Anything, extra.ID).Return(extra, nil)
		drawerRepo.On("Delete", mock.Anything, extra.ID).Return(nil)
		balanceRepo.On("Save", mock.Anything, balance).Return(nil)

		resp, err := service.DeleteExtraDrawer(context.Background(), extra.ID)

		require.NoError(t, err)
		// impact 30 - 12 = 18, balance 200 - 18 = 182
		assert.True(t, resp.NetImpact.Equal(dec("18")))
		assert.True(t, resp.GeneralBalance.Equal(dec("182")))
	})

	t.Run("normal drawers cannot be deleted", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, today)

		normal, err := cashbox.NewDrawer(today, cashbox.ShiftMorning, cashbox.LevelPrimary, decimal.Zero)
		require.NoError(t, err)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("FindByID", mock.Anything, normal.ID).Return(normal, nil)

		_, err = service.DeleteExtraDrawer(context.Background(), normal.ID)

		assert.ErrorIs(t, err, shared.ErrNotPermitted)
		drawerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestDrawerService_RecordRecess(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("zero number picks the next free slot", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, date)

		drawer, err := cashbox.NewDrawer(date, cashbox.ShiftMorning, cashbox.LevelPrimary, decimal.Zero)
		require.NoError(t, err)
		_, err = drawer.AddRecess(1, dec("10"))
		require.NoError(t, err)

		drawerRepo.On("FindByID", mock.Anything, drawer.ID).Return(drawer, nil)
		drawerRepo.On("Save", mock.Anything, drawer).Return(nil)

		resp, err := service.RecordRecess(context.Background(), drawer.ID, RecordRecessRequest{Amount: dec("25")})

		require.NoError(t, err)
		require.Len(t, resp.Recesses, 2)
		assert.Equal(t, 2, resp.Recesses[1].Number)
		assert.True(t, resp.PartialBalance.Equal(dec("35")))
	})

	t.Run("exhausted drawer reports the recess error", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service := newService(drawerRepo, balanceRepo, date)

		drawer, err := cashbox.NewDrawer(date, cashbox.ShiftMorning, cashbox.LevelPrimary, decimal.Zero)
		require.NoError(t, err)
		for n := 1; n <= 3; n++ {
			_, err = drawer.AddRecess(n, dec("5"))
			require.NoError(t, err)
		}

		drawerRepo.On("FindByID", mock.Anything, drawer.ID).Return(drawer, nil)

		_, err = service.RecordRecess(context.Background(), drawer.ID, RecordRecessRequest{Number: 1, Amount: dec("5")})

		assert.ErrorIs(t, err, cashbox.ErrRecessExhausted)
	})
}

func TestDrawerService_Purge(t *testing.T) {
	drawerRepo := new(MockDrawerRepository)
	balanceRepo := new(MockGeneralBalanceRepository)
	service := newService(drawerRepo, balanceRepo, time.Now())

	balance := balanceWith("750")

	balanceRepo.On("GetForUpdate", mock.Anything).Return(balance, nil)
	drawerRepo.On("DeleteAll", mock.Anything).Return(nil)
	balanceRepo.On("Save", mock.Anything, balance).Return(nil)

	err := service.Purge(context.Background())

	require.NoError(t, err)
	assert.True(t, balance.Amount.IsZero())
	drawerRepo.AssertExpectations(t)
}

func TestDrawerService_PublishesLifecycleEvents(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	eventTypes := func(logs *observer.ObservedLogs) []string {
		var types []string
		for _, entry := range logs.FilterMessage("domain event").All() {
			for _, field := range entry.Context {
				if field.Key == "event_type" {
					types = append(types, field.String)
				}
			}
		}
		return types
	}

	newObservedService := func(drawerRepo *MockDrawerRepository, balanceRepo *MockGeneralBalanceRepository) (*DrawerService, *observer.ObservedLogs) {
		core, logs := observer.New(zapcore.InfoLevel)
		scope := NewNoOpTransactionScope(drawerRepo, balanceRepo)
		return NewDrawerService(scope, fixedClock{now: date}, zap.New(core)), logs
	}

	t.Run("opening logs the opened event", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service, logs := newObservedService(drawerRepo, balanceRepo)

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("HasOpen", mock.Anything).Return(false, nil)
		drawerRepo.On("ExistsBySlot", mock.Anything, date, cashbox.ShiftMorning, cashbox.LevelPrimary, false).Return(false, nil)
		drawerRepo.On("Save", mock.Anything, mock.AnythingOfType("*cashbox.Drawer")).Return(nil)

		_, err := service.OpenDrawer(context.Background(), OpenDrawerRequest{Date: date, Shift: "M", Level: "P"})

		require.NoError(t, err)
		assert.Equal(t, []string{cashbox.EventTypeDrawerOpened}, eventTypes(logs))
	})

	t.Run("closing logs the closed event", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service, logs := newObservedService(drawerRepo, balanceRepo)

		drawer, err := cashbox.NewDrawer(date, cashbox.ShiftMorning, cashbox.LevelPrimary, decimal.Zero)
		require.NoError(t, err)
		drawer.ClearDomainEvents()

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("100"), nil)
		drawerRepo.On("FindByID", mock.Anything, drawer.ID).Return(drawer, nil)
		drawerRepo.On("Save", mock.Anything, drawer).Return(nil)
		balanceRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		_, err = service.CloseDrawer(context.Background(), drawer.ID)

		require.NoError(t, err)
		assert.Equal(t, []string{cashbox.EventTypeDrawerClosed}, eventTypes(logs))
		assert.Empty(t, drawer.GetDomainEvents())
	})

	t.Run("deleting an extra drawer logs the deletion event", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service, logs := newObservedService(drawerRepo, balanceRepo)

		extra, err := cashbox.NewExtraDrawer(date, cashbox.ShiftMorning, cashbox.LevelSecondary)
		require.NoError(t, err)
		extra.ClearDomainEvents()

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("100"), nil)
		drawerRepo.On("FindByID", mock.Anything, extra.ID).Return(extra, nil)
		drawerRepo.On("Delete", mock.Anything, extra.ID).Return(nil)
		balanceRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		_, err = service.DeleteExtraDrawer(context.Background(), extra.ID)

		require.NoError(t, err)
		assert.Equal(t, []string{cashbox.EventTypeExtraDrawerDelete}, eventTypes(logs))
	})

	t.Run("a rejected close logs no event", func(t *testing.T) {
		drawerRepo := new(MockDrawerRepository)
		balanceRepo := new(MockGeneralBalanceRepository)
		service, logs := newObservedService(drawerRepo, balanceRepo)

		drawer, err := cashbox.NewDrawer(date, cashbox.ShiftMorning, cashbox.LevelPrimary, decimal.Zero)
		require.NoError(t, err)
		_, err = drawer.Close()
		require.NoError(t, err)
		drawer.ClearDomainEvents()

		balanceRepo.On("GetForUpdate", mock.Anything).Return(balanceWith("0"), nil)
		drawerRepo.On("FindByID", mock.Anything, drawer.ID).Return(drawer, nil)

		_, err = service.CloseDrawer(context.Background(), drawer.ID)

		assert.ErrorIs(t, err, cashbox.ErrDrawerClosed)
		assert.Empty(t, eventTypes(logs))
	})
}
