package cashbox

import (
	"time"

	"github.com/cantina/backend/internal/domain/cashbox"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpenDrawerRequest represents a request to open a normal drawer
type OpenDrawerRequest struct {
	Date  time.Time `json:"date" binding:"required"`
	Shift string    `json:"shift" binding:"required"`
	Level string    `json:"level" binding:"required"`
}

// OpenExtraDrawerRequest represents a request to open an extra drawer.
// Extra drawers are always dated today, so no date field is accepted.
type OpenExtraDrawerRequest struct {
	Shift string `json:"shift" binding:"required"`
	Level string `json:"level" binding:"required"`
}

// RecordRecessRequest represents a request to record recess income
type RecordRecessRequest struct {
	Number int             `json:"number"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateRecessRequest represents a request to change a recess amount
type UpdateRecessRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// RecordSpecialEventRequest represents a request to record special event income
type RecordSpecialEventRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// SupplierPaymentRequest represents a request to record or update a supplier payment
type SupplierPaymentRequest struct {
	SupplierID    uuid.UUID       `json:"supplier_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	ReceiptNumber string          `json:"receipt_number"`
	Note          string          `json:"note"`
}

// AdjustBalanceRequest represents an administrative general balance adjustment
type AdjustBalanceRequest struct {
	Operation string          `json:"operation" binding:"required,oneof=set add subtract"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// RecessResponse represents a recess entry in API responses
type RecessResponse struct {
	ID     uuid.UUID       `json:"id"`
	Number int             `json:"number"`
	Amount decimal.Decimal `json:"amount"`
}

// SpecialEventResponse represents a special event entry in API responses
type SpecialEventResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// SupplierPaymentResponse represents a supplier payment entry in API responses
type SupplierPaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	Amount        decimal.Decimal `json:"amount"`
	ReceiptNumber string          `json:"receipt_number"`
	Note          string          `json:"note"`
}

// DrawerResponse represents a drawer with its movements in API responses
type DrawerResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Date             time.Time                 `json:"date"`
	Shift            string                    `json:"shift"`
	ShiftName        string                    `json:"shift_name"`
	Level            string                    `json:"level"`
	LevelName        string                    `json:"level_name"`
	IsExtra          bool                      `json:"is_extra"`
	OpeningBalance   decimal.Decimal           `json:"opening_balance"`
	PartialBalance   decimal.Decimal           `json:"partial_balance"`
	TotalIncome      decimal.Decimal           `json:"total_income"`
	TotalPayments    decimal.Decimal           `json:"total_payments"`
	Closed           bool                      `json:"closed"`
	NextRecessNumber int                       `json:"next_recess_number"`
	AcceptsPayments  bool                      `json:"accepts_payments"`
	Recesses         []RecessResponse          `json:"recesses"`
	Events           []SpecialEventResponse    `json:"events"`
	Payments         []SupplierPaymentResponse `json:"payments"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// CloseDrawerResponse reports the result of closing a drawer
type CloseDrawerResponse struct {
	Drawer         DrawerResponse  `json:"drawer"`
	Delta          decimal.Decimal `json:"delta"`
	GeneralBalance decimal.Decimal `json:"general_balance"`
}

// DeleteExtraDrawerResponse reports the reversal applied when an extra drawer is deleted
type DeleteExtraDrawerResponse struct {
	NetImpact      decimal.Decimal `json:"net_impact"`
	GeneralBalance decimal.Decimal `json:"general_balance"`
}

// GeneralBalanceResponse represents the general balance in API responses
type GeneralBalanceResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	LastUpdated time.Time       `json:"last_updated"`
}

func toDrawerResponse(d *cashbox.Drawer) DrawerResponse {
	recesses := make([]RecessResponse, 0, len(d.Recesses))
	for _, r := range d.Recesses {
		recesses = append(recesses, RecessResponse{ID: r.ID, Number: r.Number, Amount: r.Amount})
	}
	events := make([]SpecialEventResponse, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, SpecialEventResponse{ID: e.ID, Description: e.Description, Amount: e.Amount})
	}
	payments := make([]SupplierPaymentResponse, 0, len(d.Payments))
	for _, p := range d.Payments {
		payments = append(payments, SupplierPaymentResponse{
			ID:            p.ID,
			SupplierID:    p.SupplierID,
			Amount:        p.Amount,
			ReceiptNumber: p.ReceiptNumber,
			Note:          p.Note,
		})
	}

	return DrawerResponse{
		ID:               d.ID,
		Date:             d.Date,
		Shift:            d.Shift.String(),
		ShiftName:        d.Shift.DisplayName(),
		Level:            d.Level.String(),
		LevelName:        d.Level.DisplayName(),
		IsExtra:          d.IsExtra,
		OpeningBalance:   d.OpeningBalance,
		PartialBalance:   d.PartialBalance,
		TotalIncome:      d.TotalIncome(),
		TotalPayments:    d.TotalPayments(),
		Closed:           d.Closed,
		NextRecessNumber: d.NextRecessNumber(),
		AcceptsPayments:  d.AcceptsPayments(),
		Recesses:         recesses,
		Events:           events,
		Payments:         payments,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toGeneralBalanceResponse(b *cashbox.GeneralBalance) GeneralBalanceResponse {
	return GeneralBalanceResponse{Amount: b.Amount, LastUpdated: b.LastUpdated()}
}
