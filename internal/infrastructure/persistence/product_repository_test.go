package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cantina/backend/internal/domain/catalog"
	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func productColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "version",
		"subcategory_id", "supplier_id", "brand_id", "name", "description",
		"purchase_type", "units_per_package", "package_purchase_price", "purchase_discount_percent", "unit_purchase_price",
		"sale_type", "profit_margin_percent", "suggested_sale_price", "final_sale_price",
		"stock_quantity", "last_purchase", "active",
	}
}

func TestGormProductRepository_FindByID(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		subcategoryID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(productColumns()).
			AddRow(productID, now, now, 1,
				subcategoryID, nil, nil, "Alfajor", "",
				"C", 24, decimal.NewFromInt(2400), decimal.Zero, decimal.NewFromInt(100),
				"U", decimal.NewFromInt(50), decimal.NewFromInt(150), decimal.NewFromInt(150),
				30, now, true)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnRows(rows)

		product, err := repo.FindByID(context.Background(), productID)

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Alfajor", product.Name)
		assert.Equal(t, catalog.PurchaseTypeBox, product.PurchaseType)
		assert.True(t, product.UnitPurchasePrice.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 30, product.StockQuantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByID(context.Background(), productID)

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindMovements(t *testing.T) {
	t.Run("returns a page of the ledger", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "stock_movements" WHERE product_id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`SELECT \* FROM "stock_movements" WHERE product_id = \$1 ORDER BY created_at DESC LIMIT .*`).
			WithArgs(productID, 20).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "product_id", "type", "quantity", "note"}).
				AddRow(uuid.New(), now, now, productID, "OUT", 5, "").
				AddRow(uuid.New(), now, now, productID, "IN", 30, catalog.InitialStockNote))

		page, err := repo.FindMovements(context.Background(), productID, shared.DefaultFilter())

		assert.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, catalog.MovementTypeOut, page.Items[0].Type)
		assert.True(t, page.Items[1].IsInitial())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), productID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
