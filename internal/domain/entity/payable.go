package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayableExpenseCategory tags expenses created by paying a bill.
const PayableExpenseCategory = "Contas a Pagar"

// Payable is a bill owed by the restaurant.
type Payable struct {
	ID          uuid.UUID          `gorm:"type:char(36);primaryKey" json:"id"`
	Description string             `gorm:"size:255;not null" json:"description"`
	Amount      decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"amount"`
	DueDate     time.Time          `gorm:"not null;index" json:"due_date"`
	Status      enum.PayableStatus `gorm:"not null;index" json:"status"`
	PaidAt      *time.Time         `json:"paid_at,omitempty"`
	ExpenseID   *uuid.UUID         `gorm:"type:char(36)" json:"expense_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new payable
func (p *Payable) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payable model
func (Payable) TableName() string {
	return "payables"
}

// IsPaid reports whether the bill has been settled.
func (p *Payable) IsPaid() bool {
	return p.Status == enum.PayableStatusPaid
}

// CalendarDate keeps only the year, month and day t carries in its own
// location, as midnight UTC. Due dates are stored this way.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysOverdue counts whole calendar days between the due date and now's
// date in now's location; zero or negative means not yet due.
func (p *Payable) DaysOverdue(now time.Time) int {
	due := CalendarDate(p.DueDate.UTC())
	today := CalendarDate(now)
	return int(today.Sub(due) / (24 * time.Hour))
}
