package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashierSession is one cash-drawer interval. Expected cash and variance
// are derived from the tagged records on read and are never stored.
type CashierSession struct {
	ID             uuid.UUID          `gorm:"type:char(36);primaryKey" json:"id"`
	OpenedAt       time.Time          `gorm:"not null;index" json:"opened_at"`
	OpeningBalance decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"opening_balance"`
	Status         enum.SessionStatus `gorm:"not null;index" json:"status"`
	ClosedAt       *time.Time         `json:"closed_at,omitempty"`
	ClosingBalance *decimal.Decimal   `gorm:"type:decimal(12,2)" json:"closing_balance,omitempty"`
	OpenedBy       *uuid.UUID         `gorm:"type:char(36)" json:"opened_by,omitempty"`
	ClosedBy       *uuid.UUID         `gorm:"type:char(36)" json:"closed_by,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new session
func (s *CashierSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashierSession model
func (CashierSession) TableName() string {
	return "cashier_sessions"
}

// IsOpen reports whether the drawer is still trading.
func (s *CashierSession) IsOpen() bool {
	return s.Status == enum.SessionStatusOpen
}
