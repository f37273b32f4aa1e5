package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultExpenseCategory is used when none is given.
const DefaultExpenseCategory = "Geral"

// Expense is money paid out of the drawer during a session.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`
	SessionID   uuid.UUID       `gorm:"type:char(36);not null;index" json:"session_id"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category    string          `gorm:"size:100;not null" json:"category"`
	Timestamp   time.Time       `gorm:"column:occurred_at;not null;index" json:"timestamp"`
	PayableID   *uuid.UUID      `gorm:"type:char(36)" json:"payable_id,omitempty"`
	OperatorID  *uuid.UUID      `gorm:"type:char(36)" json:"operator_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
