package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyRecord is a finalized sale (or manual inflow). It is immutable;
// the only way to change it is to delete it as a correction.
type DailyRecord struct {
	ID            uuid.UUID          `gorm:"type:char(36);primaryKey" json:"id"`
	SessionID     uuid.UUID          `gorm:"type:char(36);not null;index" json:"session_id"`
	TableID       int                `gorm:"not null;index" json:"table_id"`
	Origin        enum.SaleOrigin    `gorm:"not null" json:"origin"`
	CustomerName  *string            `gorm:"size:255" json:"customer_name,omitempty"`
	Note          string             `gorm:"size:255" json:"note,omitempty"`
	OpenedAt      time.Time          `gorm:"not null" json:"opened_at"`
	ClosedAt      time.Time          `gorm:"not null;index" json:"closed_at"`
	Items         OrderLines         `gorm:"type:text;serializer:json" json:"items"`
	Total         decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"total"`
	PaymentMethod enum.PaymentMethod `gorm:"not null" json:"payment_method"`
	OperatorID    *uuid.UUID         `gorm:"type:char(36)" json:"operator_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new record
func (r *DailyRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailyRecord model
func (DailyRecord) TableName() string {
	return "daily_records"
}

// Label is the human description used in feeds and receipts.
func (r *DailyRecord) Label() string {
	switch {
	case r.Origin == enum.SaleOriginManual && r.Note != "":
		return r.Note
	case r.TableID == QuickSaleTableID:
		return "Balcão"
	default:
		return "Mesa " + strconv.Itoa(r.TableID)
	}
}
