package persistence

import (
	"errors"

	"github.com/cantina/backend/internal/domain/shared"
)

// errStaleDrawer reports a drawer write that lost its optimistic lock race
var errStaleDrawer = shared.NewDomainError("DRAWER_CONFLICT", "Drawer was modified by another transaction")

// storageErr wraps a raw driver failure so callers see the storage error
// code instead of gorm internals. Domain errors pass through untouched and
// the cause stays reachable through errors.Is.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return shared.NewStorageError(err)
}
