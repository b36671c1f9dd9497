package cashbox

import (
	"context"

	"github.com/cantina/backend/internal/domain/cashbox"
)

// TransactionScope provides transactional access to the cashbox repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically. Drawer lifecycle operations that fold money into the
// general balance (close, extra delete) must run inside a scope so the
// drawer write and the balance write cannot diverge.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the cashbox repositories
// within a transaction. Both repositories share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// DrawerRepo returns the drawer repository scoped to the current transaction
	DrawerRepo() cashbox.DrawerRepository
	// BalanceRepo returns the general balance repository scoped to the current transaction
	BalanceRepo() cashbox.GeneralBalanceRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	drawerRepo  cashbox.DrawerRepository
	balanceRepo cashbox.GeneralBalanceRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	drawerRepo cashbox.DrawerRepository,
	balanceRepo cashbox.GeneralBalanceRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		drawerRepo:  drawerRepo,
		balanceRepo: balanceRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// DrawerRepo returns the drawer repository.
func (s *NoOpTransactionScope) DrawerRepo() cashbox.DrawerRepository {
	return s.drawerRepo
}

// BalanceRepo returns the general balance repository.
func (s *NoOpTransactionScope) BalanceRepo() cashbox.GeneralBalanceRepository {
	return s.balanceRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
