package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Operator is a person allowed to use the terminal.
type Operator struct {
	ID           uuid.UUID         `gorm:"type:char(36);primaryKey" json:"id"`
	Username     string            `gorm:"size:100;not null;uniqueIndex" json:"username"`
	DisplayName  string            `gorm:"size:255;not null" json:"display_name"`
	PasswordHash string            `gorm:"size:255;not null" json:"-"`
	Role         enum.OperatorRole `gorm:"not null" json:"role"`
	IsActive     bool              `gorm:"not null" json:"is_active"`
	LastLoginAt  *time.Time        `json:"last_login_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new operator
func (o *Operator) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Operator model
func (Operator) TableName() string {
	return "operators"
}

// IsAdmin reports whether the operator may manage the store.
func (o *Operator) IsAdmin() bool {
	return o.Role == enum.OperatorRoleAdmin
}
