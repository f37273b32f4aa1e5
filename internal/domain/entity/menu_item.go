package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItem is a catalog entry. Items are never deleted; they are
// withdrawn from sale by clearing IsAvailable.
type MenuItem struct {
	ID          uuid.UUID        `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	Price       decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	CostPrice   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost_price,omitempty"`
	Category    string           `gorm:"size:100;index" json:"category"`
	ImageURL    string           `gorm:"size:512" json:"image_url,omitempty"`
	IsAvailable bool             `gorm:"not null" json:"is_available"`
	Stock       int              `gorm:"not null" json:"stock"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// Margin is price minus cost, or nil when no cost is recorded.
func (m *MenuItem) Margin() *decimal.Decimal {
	if m.CostPrice == nil {
		return nil
	}
	margin := m.Price.Sub(*m.CostPrice)
	return &margin
}

// Category is a label items are grouped under. Position keeps insertion
// order for listing.
type Category struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Position  int       `gorm:"not null;index" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
