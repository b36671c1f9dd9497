package cashbox

import "github.com/cantina/backend/internal/domain/shared"

// Drawer lifecycle errors
var (
	// ErrDrawerConflict signals a uniqueness or "one open drawer at a time" violation
	ErrDrawerConflict = shared.NewDomainError("DRAWER_CONFLICT", "A drawer already exists for this slot or another drawer is still open")
	// ErrExtraDrawerNotEligible signals that the preconditions for an extra drawer are not met
	ErrExtraDrawerNotEligible = shared.NewDomainError("EXTRA_DRAWER_NOT_ELIGIBLE", "No closed normal drawer for today matches this slot, or an extra drawer already exists")
	// ErrRecessExhausted signals that no recess slot remains on the drawer
	ErrRecessExhausted = shared.NewDomainError("RECESS_EXHAUSTED", "All recess slots for this drawer are taken")
	// ErrDrawerClosed signals a mutation attempt on a closed drawer
	ErrDrawerClosed = shared.NewDomainError("INVALID_STATE", "Drawer is already closed")
)
