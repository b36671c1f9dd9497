package catalog

import (
	"time"

	"github.com/cantina/backend/internal/domain/shared"
)

// Supplier is a provider the canteen buys from and pays out of secondary
// drawers.
type Supplier struct {
	shared.BaseEntity
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// NewSupplier creates an active supplier
func NewSupplier(name string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier name cannot exceed 200 characters")
	}
	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Active:     true,
	}, nil
}

// Rename changes the supplier name
func (s *Supplier) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Supplier name cannot be empty")
	}
	s.Name = name
	s.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the supplier inactive without removing history
func (s *Supplier) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
}

// Activate marks the supplier active again
func (s *Supplier) Activate() {
	s.Active = true
	s.UpdatedAt = time.Now()
}
