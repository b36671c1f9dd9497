package handler

import (
	"time"

	cashboxapp "github.com/cantina/backend/internal/application/cashbox"
	"github.com/gin-gonic/gin"
)

// CashboxHandler handles drawer, general balance and overview endpoints
type CashboxHandler struct {
	BaseHandler
	drawers *cashboxapp.DrawerService
	balance *cashboxapp.BalanceService
	reports *cashboxapp.ReportService
}

// NewCashboxHandler creates a new CashboxHandler
func NewCashboxHandler(drawers *cashboxapp.DrawerService, balance *cashboxapp.BalanceService, reports *cashboxapp.ReportService) *CashboxHandler {
	return &CashboxHandler{
		drawers: drawers,
		balance: balance,
		reports: reports,
	}
}

// RegisterRoutes registers the cashbox routes
func (h *CashboxHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cashbox := rg.Group("/cashbox")

	cashbox.GET("/overview", h.Overview)
	cashbox.GET("/balance", h.GetBalance)
	cashbox.PUT("/balance", h.AdjustBalance)

	drawers := cashbox.Group("/drawers")
	drawers.GET("", h.ListDrawers)
	drawers.POST("", h.OpenDrawer)
	drawers.DELETE("", h.Purge)
	drawers.POST("/extra", h.OpenExtraDrawer)
	drawers.GET("/:id", h.GetDrawer)
	drawers.DELETE("/:id", h.DeleteExtraDrawer)
	drawers.POST("/:id/close", h.CloseDrawer)
	drawers.POST("/:id/recesses", h.RecordRecess)
	drawers.PUT("/:id/recesses/:entryId", h.UpdateRecess)
	drawers.DELETE("/:id/recesses/:entryId", h.DeleteRecess)
	drawers.POST("/:id/events", h.RecordSpecialEvent)
	drawers.POST("/:id/payments", h.RecordSupplierPayment)
	drawers.PUT("/:id/payments/:entryId", h.UpdateSupplierPayment)
	drawers.DELETE("/:id/payments/:entryId", h.DeleteSupplierPayment)
}

// Overview returns the drawer list grouped by date, the balances and the
// extra drawer slots still available today.
func (h *CashboxHandler) Overview(c *gin.Context) {
	var dateFilter *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		dateFilter = &parsed
	}

	overview, err := h.reports.Overview(c.Request.Context(), dateFilter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// GetBalance returns the general balance
func (h *CashboxHandler) GetBalance(c *gin.Context) {
	balance, err := h.balance.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, balance)
}

// AdjustBalance applies an administrative balance adjustment
func (h *CashboxHandler) AdjustBalance(c *gin.Context) {
	var req cashboxapp.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	balance, err := h.balance.Adjust(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, balance)
}

// ListDrawers returns drawers, optionally restricted to one date
func (h *CashboxHandler) ListDrawers(c *gin.Context) {
	var dateFilter *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		dateFilter = &parsed
	}

	drawers, err := h.drawers.ListDrawers(c.Request.Context(), dateFilter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drawers)
}

// OpenDrawer opens a normal drawer for a (date, shift, level) slot
func (h *CashboxHandler) OpenDrawer(c *gin.Context) {
	var req cashboxapp.OpenDrawerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	drawer, err := h.drawers.OpenDrawer(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, drawer)
}

// OpenExtraDrawer opens an extra drawer for one of today's closed slots
func (h *CashboxHandler) OpenExtraDrawer(c *gin.Context) {
	var req cashboxapp.OpenExtraDrawerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	drawer, err := h.drawers.OpenExtraDrawer(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, drawer)
}

// GetDrawer returns one drawer with all its movement entries
func (h *CashboxHandler) GetDrawer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}

	drawer, err := h.drawers.GetDrawer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drawer)
}

// CloseDrawer closes a drawer and folds its delta into the general balance
func (h *CashboxHandler) CloseDrawer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}

	result, err := h.drawers.CloseDrawer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteExtraDrawer removes an extra drawer and reverses its balance impact
func (h *CashboxHandler) DeleteExtraDrawer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}

	result, err := h.drawers.DeleteExtraDrawer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Purge deletes every drawer and resets the general balance to zero
func (h *CashboxHandler) Purge(c *gin.Context) {
	if err := h.drawers.Purge(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RecordRecess records recess income on a drawer
func (h *CashboxHandler) RecordRecess(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}

	var req cashboxapp.RecordRecessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	drawer, err := h.drawers.RecordRecess(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, drawer)
}

// UpdateRecess changes the amount of a recess entry
func (h *CashboxHandler) UpdateRecess(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}
	entryID, ok := parseEntryIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	var req cashboxapp.UpdateRecessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	drawer, err := h.drawers.UpdateRecess(c.Request.Context(), id, entryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drawer)
}

// DeleteRecess removes a recess entry and frees its slot
func (h *CashboxHandler) DeleteRecess(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}
	entryID, ok := parseEntryIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	drawer, err := h.drawers.DeleteRecess(c.Request.Context(), id, entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drawer)
}

// RecordSpecialEvent records special event income on a drawer
func (h *CashboxHandler) RecordSpecialEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}

	var req cashboxapp.RecordSpecialEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	drawer, err := h.drawers.RecordSpecialEvent(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, drawer)
}

// RecordSupplierPayment records a supplier payment on a drawer
func (h *CashboxHandler) RecordSupplierPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}

	var req cashboxapp.SupplierPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	drawer, err := h.drawers.RecordSupplierPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, drawer)
}

// UpdateSupplierPayment changes an existing supplier payment entry
func (h *CashboxHandler) UpdateSupplierPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}
	entryID, ok := parseEntryIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	var req cashboxapp.SupplierPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	drawer, err := h.drawers.UpdateSupplierPayment(c.Request.Context(), id, entryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drawer)
}

// DeleteSupplierPayment removes a supplier payment entry
func (h *CashboxHandler) DeleteSupplierPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid drawer ID")
		return
	}
	entryID, ok := parseEntryIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	drawer, err := h.drawers.DeleteSupplierPayment(c.Request.Context(), id, entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drawer)
}
