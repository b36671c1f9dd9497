package catalog

import (
	"time"

	"github.com/cantina/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category groups products at the top level. Names are unique.
type Category struct {
	shared.BaseEntity
	Name string `json:"name"`
}

// NewCategory creates a category
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Category name cannot exceed 100 characters")
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Category name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// Subcategory is a second-level grouping inside a category.
// (category, name) is unique.
type Subcategory struct {
	shared.BaseEntity
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
}

// NewSubcategory creates a subcategory under the given category
func NewSubcategory(categoryID uuid.UUID, name string) (*Subcategory, error) {
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Parent category is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Subcategory name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Subcategory name cannot exceed 100 characters")
	}
	return &Subcategory{
		BaseEntity: shared.NewBaseEntity(),
		CategoryID: categoryID,
		Name:       name,
	}, nil
}
