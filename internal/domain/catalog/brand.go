package catalog

import (
	"time"

	"github.com/cantina/backend/internal/domain/shared"
)

// Brand is a product brand. Names are unique.
type Brand struct {
	shared.BaseEntity
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// NewBrand creates an active brand
func NewBrand(name string) (*Brand, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Brand name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Brand name cannot exceed 100 characters")
	}
	return &Brand{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Active:     true,
	}, nil
}

// Rename changes the brand name
func (b *Brand) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Brand name cannot be empty")
	}
	b.Name = name
	b.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the brand inactive
func (b *Brand) Deactivate() {
	b.Active = false
	b.UpdatedAt = time.Now()
}
