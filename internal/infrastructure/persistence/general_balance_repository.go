package persistence

import (
	"context"
	"errors"

	"github.com/cantina/backend/internal/domain/cashbox"
	"github.com/cantina/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormGeneralBalanceRepository implements GeneralBalanceRepository using GORM
type GormGeneralBalanceRepository struct {
	db *gorm.DB
}

// NewGormGeneralBalanceRepository creates a new GormGeneralBalanceRepository
func NewGormGeneralBalanceRepository(db *gorm.DB) *GormGeneralBalanceRepository {
	return &GormGeneralBalanceRepository{db: db}
}

// Get returns the balance singleton, creating the zero row on first access
func (r *GormGeneralBalanceRepository) Get(ctx context.Context) (*cashbox.GeneralBalance, error) {
	return r.get(ctx, false)
}

// GetForUpdate returns the balance singleton holding its row lock until the
// surrounding transaction commits. Drawer lifecycle operations take this
// lock first so their read-check-write sequences run one at a time.
func (r *GormGeneralBalanceRepository) GetForUpdate(ctx context.Context) (*cashbox.GeneralBalance, error) {
	return r.get(ctx, true)
}

func (r *GormGeneralBalanceRepository) get(ctx context.Context, lock bool) (*cashbox.GeneralBalance, error) {
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx)
		if lock {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		return q.Order("created_at ASC")
	}

	var model models.GeneralBalanceModel
	err := query().First(&model).Error
	if err == nil {
		return model.ToDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}

	// First access: seed the zero row, then re-read with the same clauses
	// so a FOR UPDATE caller still ends up holding the lock.
	balance := cashbox.NewGeneralBalance()
	model.FromDomain(balance)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, storageErr(err)
	}
	var reread models.GeneralBalanceModel
	if err := query().First(&reread).Error; err != nil {
		return nil, storageErr(err)
	}
	return reread.ToDomain(), nil
}

// Save persists the balance singleton
func (r *GormGeneralBalanceRepository) Save(ctx context.Context, balance *cashbox.GeneralBalance) error {
	model := &models.GeneralBalanceModel{}
	model.FromDomain(balance)
	return storageErr(r.db.WithContext(ctx).Save(model).Error)
}

// Ensure GormGeneralBalanceRepository implements GeneralBalanceRepository
var _ cashbox.GeneralBalanceRepository = (*GormGeneralBalanceRepository)(nil)
