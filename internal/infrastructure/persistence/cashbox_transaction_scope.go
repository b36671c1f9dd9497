package persistence

import (
	"context"

	appcashbox "github.com/cantina/backend/internal/application/cashbox"
	"github.com/cantina/backend/internal/domain/cashbox"
	"gorm.io/gorm"
)

// GormCashboxTransactionScope implements the cashbox TransactionScope using
// GORM transactions. Drawer and balance mutations that must land together
// run through it.
type GormCashboxTransactionScope struct {
	db *gorm.DB
}

// NewGormCashboxTransactionScope creates a new GormCashboxTransactionScope
func NewGormCashboxTransactionScope(db *gorm.DB) *GormCashboxTransactionScope {
	return &GormCashboxTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormCashboxTransactionScope) Execute(ctx context.Context, fn func(repos appcashbox.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormCashboxRepositories{tx: tx}
		return fn(repos)
	})
}

// gormCashboxRepositories provides the cashbox repositories scoped to one transaction
type gormCashboxRepositories struct {
	tx *gorm.DB
}

// DrawerRepo returns the drawer repository scoped to the current transaction
func (r *gormCashboxRepositories) DrawerRepo() cashbox.DrawerRepository {
	return NewGormDrawerRepository(r.tx)
}

// BalanceRepo returns the general balance repository scoped to the current transaction
func (r *gormCashboxRepositories) BalanceRepo() cashbox.GeneralBalanceRepository {
	return NewGormGeneralBalanceRepository(r.tx)
}

// Ensure GormCashboxTransactionScope implements TransactionScope
var _ appcashbox.TransactionScope = (*GormCashboxTransactionScope)(nil)

// Ensure gormCashboxRepositories implements TransactionalRepositories
var _ appcashbox.TransactionalRepositories = (*gormCashboxRepositories)(nil)
