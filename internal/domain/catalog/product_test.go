package catalog

import (
	"testing"

	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func intPtr(v int) *int {
	return &v
}

func newUnitProduct(t *testing.T, price, discount, margin string) *Product {
	t.Helper()
	p, err := NewProduct(
		uuid.New(), nil, nil,
		"Alfajor", "",
		PurchaseTypeUnit, nil,
		dec(price), dec(discount),
		SaleTypeUnit, dec(margin), decimal.Zero,
	)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("unit purchase keeps package price as unit price", func(t *testing.T) {
		p := newUnitProduct(t, "120", "0", "0")

		assert.True(t, p.UnitPurchasePrice.Equal(dec("120")))
		assert.True(t, p.SuggestedSalePrice.Equal(dec("120")))
		assert.True(t, p.Active)
	})

	t.Run("box purchase divides by units per package", func(t *testing.T) {
		p, err := NewProduct(
			uuid.New(), nil, nil,
			"Gaseosa", "",
			PurchaseTypeBox, intPtr(24),
			dec("2400"), decimal.Zero,
			SaleTypeUnit, decimal.Zero, decimal.Zero,
		)
		require.NoError(t, err)

		assert.True(t, p.UnitPurchasePrice.Equal(dec("100")), "got %s", p.UnitPurchasePrice)
	})

	t.Run("discount is applied to the unit price", func(t *testing.T) {
		p, err := NewProduct(
			uuid.New(), nil, nil,
			"Galletitas", "",
			PurchaseTypeBag, intPtr(10),
			dec("1000"), dec("10"),
			SaleTypeUnit, decimal.Zero, decimal.Zero,
		)
		require.NoError(t, err)

		// 1000/10 = 100, minus 10% = 90
		assert.True(t, p.UnitPurchasePrice.Equal(dec("90")), "got %s", p.UnitPurchasePrice)
	})

	t.Run("margin builds the suggested price", func(t *testing.T) {
		p := newUnitProduct(t, "100", "0", "50")

		assert.True(t, p.SuggestedSalePrice.Equal(dec("150")), "got %s", p.SuggestedSalePrice)
	})

	t.Run("discount and margin compose", func(t *testing.T) {
		p, err := NewProduct(
			uuid.New(), nil, nil,
			"Jugo", "",
			PurchaseTypeBox, intPtr(12),
			dec("1200"), dec("5"),
			SaleTypeUnit, dec("40"), decimal.Zero,
		)
		require.NoError(t, err)

		// 1200/12 = 100, minus 5% = 95, plus 40% = 133
		assert.True(t, p.UnitPurchasePrice.Equal(dec("95")))
		assert.True(t, p.SuggestedSalePrice.Equal(dec("133")), "got %s", p.SuggestedSalePrice)
	})

	t.Run("box purchase without units per package is rejected", func(t *testing.T) {
		_, err := NewProduct(
			uuid.New(), nil, nil,
			"Gaseosa", "",
			PurchaseTypeBox, nil,
			dec("2400"), decimal.Zero,
			SaleTypeUnit, decimal.Zero, decimal.Zero,
		)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})

	t.Run("box purchase with zero units per package is rejected", func(t *testing.T) {
		_, err := NewProduct(
			uuid.New(), nil, nil,
			"Gaseosa", "",
			PurchaseTypeBox, intPtr(0),
			dec("2400"), decimal.Zero,
			SaleTypeUnit, decimal.Zero, decimal.Zero,
		)

		require.Error(t, err)
	})

	t.Run("negative purchase price is rejected", func(t *testing.T) {
		_, err := NewProduct(
			uuid.New(), nil, nil,
			"Alfajor", "",
			PurchaseTypeUnit, nil,
			dec("-1"), decimal.Zero,
			SaleTypeUnit, decimal.Zero, decimal.Zero,
		)

		require.Error(t, err)
	})

	t.Run("missing subcategory is rejected", func(t *testing.T) {
		_, err := NewProduct(
			uuid.Nil, nil, nil,
			"Alfajor", "",
			PurchaseTypeUnit, nil,
			dec("10"), decimal.Zero,
			SaleTypeUnit, decimal.Zero, decimal.Zero,
		)

		require.Error(t, err)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := NewProduct(
			uuid.New(), nil, nil,
			"", "",
			PurchaseTypeUnit, nil,
			dec("10"), decimal.Zero,
			SaleTypeUnit, decimal.Zero, decimal.Zero,
		)

		require.Error(t, err)
	})
}

func TestProduct_UpdatePurchaseData(t *testing.T) {
	t.Run("recomputes derived prices", func(t *testing.T) {
		p := newUnitProduct(t, "100", "0", "50")

		err := p.UpdatePurchaseData(PurchaseTypeBox, intPtr(20), dec("1600"), decimal.Zero)
		require.NoError(t, err)

		assert.True(t, p.UnitPurchasePrice.Equal(dec("80")))
		assert.True(t, p.SuggestedSalePrice.Equal(dec("120")))
	})

	t.Run("switching to box without units per package fails", func(t *testing.T) {
		p := newUnitProduct(t, "100", "0", "0")

		err := p.UpdatePurchaseData(PurchaseTypeBox, nil, dec("1600"), decimal.Zero)
		require.Error(t, err)
	})
}

func TestProduct_UpdateSaleData(t *testing.T) {
	p := newUnitProduct(t, "100", "0", "0")

	err := p.UpdateSaleData(SaleTypeUnit, dec("25"), dec("130"))
	require.NoError(t, err)

	assert.True(t, p.SuggestedSalePrice.Equal(dec("125")))
	assert.True(t, p.FinalSalePrice.Equal(dec("130")))
}

func TestProduct_RecordMovement(t *testing.T) {
	t.Run("in movement increments stock", func(t *testing.T) {
		p := newUnitProduct(t, "100", "0", "0")

		m, err := p.RecordMovement(MovementTypeIn, 24, "weekly delivery")
		require.NoError(t, err)

		assert.Equal(t, 24, p.StockQuantity)
		assert.Equal(t, p.ID, m.ProductID)
		assert.Len(t, p.Movements, 1)
	})

	t.Run("out movement decrements stock", func(t *testing.T) {
		p := newUnitProduct(t, "100", "0", "0")
		_, err := p.RecordMovement(MovementTypeIn, 24, "")
		require.NoError(t, err)

		_, err = p.RecordMovement(MovementTypeOut, 10, "recess sale")
		require.NoError(t, err)

		assert.Equal(t, 14, p.StockQuantity)
	})

	t.Run("out movement beyond stock is rejected", func(t *testing.T) {
		p := newUnitProduct(t, "100", "0", "0")
		_, err := p.RecordMovement(MovementTypeIn, 5, "")
		require.NoError(t, err)

		_, err = p.RecordMovement(MovementTypeOut, 6, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, 5, p.StockQuantity)
	})

	t.Run("out movement can drain stock to zero", func(t *testing.T) {
		p := newUnitProduct(t, "100", "0", "0")
		_, err := p.RecordMovement(MovementTypeIn, 5, "")
		require.NoError(t, err)

		_, err = p.RecordMovement(MovementTypeOut, 5, "")
		require.NoError(t, err)

		assert.Equal(t, 0, p.StockQuantity)
	})

	t.Run("non positive quantity is rejected", func(t *testing.T) {
		p := newUnitProduct(t, "100", "0", "0")

		_, err := p.RecordMovement(MovementTypeIn, 0, "")
		require.Error(t, err)

		_, err = p.RecordMovement(MovementTypeIn, -3, "")
		require.Error(t, err)
	})

	t.Run("initial movement is recognizable", func(t *testing.T) {
		p := newUnitProduct(t, "100", "0", "0")

		m, err := p.RecordMovement(MovementTypeIn, 10, InitialStockNote)
		require.NoError(t, err)

		assert.True(t, m.IsInitial())
	})
}
