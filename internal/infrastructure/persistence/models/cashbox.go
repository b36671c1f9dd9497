package models

import (
	"time"

	"github.com/cantina/backend/internal/domain/cashbox"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DrawerModel is the GORM model for the drawer aggregate. The
// (date, shift, level, is_extra) slot is unique, so one normal and at most
// one extra drawer can exist per slot.
type DrawerModel struct {
	AggregateModel
	Date           time.Time       `gorm:"type:date;not null;uniqueIndex:idx_drawers_slot;index"`
	Shift          string          `gorm:"type:varchar(1);not null;uniqueIndex:idx_drawers_slot"`
	Level          string          `gorm:"type:varchar(1);not null;uniqueIndex:idx_drawers_slot"`
	IsExtra        bool            `gorm:"not null;default:false;uniqueIndex:idx_drawers_slot"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PartialBalance decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Closed         bool            `gorm:"not null;default:false;index"`

	Recesses []RecessModel          `gorm:"foreignKey:DrawerID;constraint:OnDelete:CASCADE"`
	Events   []SpecialEventModel    `gorm:"foreignKey:DrawerID;constraint:OnDelete:CASCADE"`
	Payments []SupplierPaymentModel `gorm:"foreignKey:DrawerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for DrawerModel
func (DrawerModel) TableName() string {
	return "drawers"
}

// RecessModel is the GORM model for recess income entries. Each drawer can
// use a recess slot number once.
type RecessModel struct {
	BaseModel
	DrawerID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_recesses_drawer_number"`
	Number   int             `gorm:"not null;uniqueIndex:idx_recesses_drawer_number"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the table name for RecessModel
func (RecessModel) TableName() string {
	return "recesses"
}

// SpecialEventModel is the GORM model for special event income entries
type SpecialEventModel struct {
	BaseModel
	DrawerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the table name for SpecialEventModel
func (SpecialEventModel) TableName() string {
	return "special_events"
}

// SupplierPaymentModel is the GORM model for supplier payment entries
type SupplierPaymentModel struct {
	BaseModel
	DrawerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ReceiptNumber string          `gorm:"type:varchar(50)"`
	Note          string          `gorm:"type:text"`
}

// TableName specifies the table name for SupplierPaymentModel
func (SupplierPaymentModel) TableName() string {
	return "supplier_payments"
}

// GeneralBalanceModel is the GORM model for the general balance singleton
type GeneralBalanceModel struct {
	BaseModel
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the table name for GeneralBalanceModel
func (GeneralBalanceModel) TableName() string {
	return "general_balances"
}

// ToDomain converts DrawerModel with its movements to the domain aggregate
func (m *DrawerModel) ToDomain() *cashbox.Drawer {
	drawer := &cashbox.Drawer{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Date:              m.Date,
		Shift:             cashbox.Shift(m.Shift),
		Level:             cashbox.Level(m.Level),
		IsExtra:           m.IsExtra,
		OpeningBalance:    m.OpeningBalance,
		PartialBalance:    m.PartialBalance,
		Closed:            m.Closed,
	}

	drawer.Recesses = make([]cashbox.Recess, 0, len(m.Recesses))
	for _, r := range m.Recesses {
		drawer.Recesses = append(drawer.Recesses, cashbox.Recess{
			BaseEntity: r.BaseModel.ToDomain(),
			DrawerID:   r.DrawerID,
			Number:     r.Number,
			Amount:     r.Amount,
		})
	}

	drawer.Events = make([]cashbox.SpecialEvent, 0, len(m.Events))
	for _, e := range m.Events {
		drawer.Events = append(drawer.Events, cashbox.SpecialEvent{
			BaseEntity:  e.BaseModel.ToDomain(),
			DrawerID:    e.DrawerID,
			Description: e.Description,
			Amount:      e.Amount,
		})
	}

	drawer.Payments = make([]cashbox.SupplierPayment, 0, len(m.Payments))
	for _, p := range m.Payments {
		drawer.Payments = append(drawer.Payments, cashbox.SupplierPayment{
			BaseEntity:    p.BaseModel.ToDomain(),
			DrawerID:      p.DrawerID,
			SupplierID:    p.SupplierID,
			Amount:        p.Amount,
			ReceiptNumber: p.ReceiptNumber,
			Note:          p.Note,
		})
	}

	return drawer
}

// FromDomain populates DrawerModel from the domain aggregate
func (m *DrawerModel) FromDomain(d *cashbox.Drawer) {
	m.FromDomainAggregateRoot(d.BaseAggregateRoot)
	m.Date = d.Date
	m.Shift = d.Shift.String()
	m.Level = d.Level.String()
	m.IsExtra = d.IsExtra
	m.OpeningBalance = d.OpeningBalance
	m.PartialBalance = d.PartialBalance
	m.Closed = d.Closed

	m.Recesses = make([]RecessModel, 0, len(d.Recesses))
	for _, r := range d.Recesses {
		rm := RecessModel{DrawerID: r.DrawerID, Number: r.Number, Amount: r.Amount}
		rm.FromDomainBaseEntity(r.BaseEntity)
		m.Recesses = append(m.Recesses, rm)
	}

	m.Events = make([]SpecialEventModel, 0, len(d.Events))
	for _, e := range d.Events {
		em := SpecialEventModel{DrawerID: e.DrawerID, Description: e.Description, Amount: e.Amount}
		em.FromDomainBaseEntity(e.BaseEntity)
		m.Events = append(m.Events, em)
	}

	m.Payments = make([]SupplierPaymentModel, 0, len(d.Payments))
	for _, p := range d.Payments {
		pm := SupplierPaymentModel{
			DrawerID:      p.DrawerID,
			SupplierID:    p.SupplierID,
			Amount:        p.Amount,
			ReceiptNumber: p.ReceiptNumber,
			Note:          p.Note,
		}
		pm.FromDomainBaseEntity(p.BaseEntity)
		m.Payments = append(m.Payments, pm)
	}
}

// ToDomain converts GeneralBalanceModel to the domain entity
func (m *GeneralBalanceModel) ToDomain() *cashbox.GeneralBalance {
	return &cashbox.GeneralBalance{
		BaseEntity: m.BaseModel.ToDomain(),
		Amount:     m.Amount,
	}
}

// FromDomain populates GeneralBalanceModel from the domain entity
func (m *GeneralBalanceModel) FromDomain(b *cashbox.GeneralBalance) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.Amount = b.Amount
}
