package handler

import (
	catalogapp "github.com/cantina/backend/internal/application/catalog"
	"github.com/cantina/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles product and stock ledger endpoints
type ProductHandler struct {
	BaseHandler
	products *catalogapp.ProductService
	stock    *catalogapp.StockService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *catalogapp.ProductService, stock *catalogapp.StockService) *ProductHandler {
	return &ProductHandler{products: products, stock: stock}
}

// RegisterRoutes registers the product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog/products")
	products.GET("", h.List)
	products.POST("", h.Create)
	products.GET("/:id", h.Get)
	products.PUT("/:id", h.Update)
	products.DELETE("/:id", h.Delete)
	products.POST("/:id/activate", h.Activate)
	products.POST("/:id/deactivate", h.Deactivate)
	products.GET("/:id/movements", h.ListMovements)
	products.POST("/:id/movements", h.RecordMovement)
}

// List returns a page of products matching the query filters
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.products.ListProducts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Create registers a new product with derived pricing
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Update modifies a product and recomputes its derived prices
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product permanently
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Activate makes a product visible in listings again
func (h *ProductHandler) Activate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.products.ActivateProduct(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate hides a product from listings
func (h *ProductHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.products.DeactivateProduct(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListMovements returns a page of the product's stock ledger
func (h *ProductHandler) ListMovements(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.stock.ListMovements(c.Request.Context(), id, req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// RecordMovement appends a stock movement and adjusts the product quantity
func (h *ProductHandler) RecordMovement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movement, err := h.stock.RecordMovement(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, movement)
}

// ReferenceHandler handles category, subcategory, supplier and brand endpoints
type ReferenceHandler struct {
	BaseHandler
	references *catalogapp.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(references *catalogapp.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{references: references}
}

// RegisterRoutes registers the reference data routes
func (h *ReferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")

	categories := catalog.Group("/categories")
	categories.GET("", h.ListCategories)
	categories.POST("", h.CreateCategory)
	categories.PUT("/:id", h.RenameCategory)
	categories.DELETE("/:id", h.DeleteCategory)

	subcategories := catalog.Group("/subcategories")
	subcategories.GET("", h.ListSubcategories)
	subcategories.POST("", h.CreateSubcategory)
	subcategories.DELETE("/:id", h.DeleteSubcategory)

	suppliers := catalog.Group("/suppliers")
	suppliers.GET("", h.ListSuppliers)
	suppliers.POST("", h.CreateSupplier)
	suppliers.PUT("/:id", h.RenameSupplier)
	suppliers.POST("/:id/deactivate", h.DeactivateSupplier)

	brands := catalog.Group("/brands")
	brands.GET("", h.ListBrands)
	brands.POST("", h.CreateBrand)
	brands.PUT("/:id", h.RenameBrand)
	brands.POST("/:id/deactivate", h.DeactivateBrand)
}

// ListCategories returns every category ordered by name
func (h *ReferenceHandler) ListCategories(c *gin.Context) {
	categories, err := h.references.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// CreateCategory creates a new category
func (h *ReferenceHandler) CreateCategory(c *gin.Context) {
	var req catalogapp.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.references.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// RenameCategory changes a category name
func (h *ReferenceHandler) RenameCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req catalogapp.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.references.RenameCategory(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// DeleteCategory removes a category and its subcategories
func (h *ReferenceHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.references.DeleteCategory(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListSubcategories returns subcategories, optionally for one category
func (h *ReferenceHandler) ListSubcategories(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		categoryID = &parsed
	}

	subcategories, err := h.references.ListSubcategories(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, subcategories)
}

// CreateSubcategory creates a subcategory under a category
func (h *ReferenceHandler) CreateSubcategory(c *gin.Context) {
	var req catalogapp.SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	subcategory, err := h.references.CreateSubcategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, subcategory)
}

// DeleteSubcategory removes a subcategory
func (h *ReferenceHandler) DeleteSubcategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid subcategory ID")
		return
	}

	if err := h.references.DeleteSubcategory(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListSuppliers returns suppliers, optionally only the active ones
func (h *ReferenceHandler) ListSuppliers(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	suppliers, err := h.references.ListSuppliers(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, suppliers)
}

// CreateSupplier creates a new supplier
func (h *ReferenceHandler) CreateSupplier(c *gin.Context) {
	var req catalogapp.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.references.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, supplier)
}

// RenameSupplier changes a supplier name
func (h *ReferenceHandler) RenameSupplier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req catalogapp.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.references.RenameSupplier(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}

// DeactivateSupplier hides a supplier from active listings
func (h *ReferenceHandler) DeactivateSupplier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.references.DeactivateSupplier(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RenameBrand changes a brand name
func (h *ReferenceHandler) RenameBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid brand ID")
		return
	}

	var req catalogapp.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	brand, err := h.references.RenameBrand(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, brand)
}

// ListBrands returns brands, optionally only the active ones
func (h *ReferenceHandler) ListBrands(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	brands, err := h.references.ListBrands(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, brands)
}

// CreateBrand creates a new brand
func (h *ReferenceHandler) CreateBrand(c *gin.Context) {
	var req catalogapp.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	brand, err := h.references.CreateBrand(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, brand)
}

// DeactivateBrand hides a brand from active listings
func (h *ReferenceHandler) DeactivateBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid brand ID")
		return
	}

	if err := h.references.DeactivateBrand(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
