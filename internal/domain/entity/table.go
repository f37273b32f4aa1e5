package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuickSaleTableID tags sale records that did not come from a table.
const QuickSaleTableID = 0

// Table is a dine-in table from the fixed pool 1..N. A table is active
// exactly while it holds items.
type Table struct {
	ID           int        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Items        OrderLines `gorm:"type:text;serializer:json" json:"items"`
	OpenedAt     *time.Time `json:"opened_at,omitempty"`
	CustomerName *string    `gorm:"size:255" json:"customer_name,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName returns the table name for the Table model
func (Table) TableName() string {
	return "dining_tables"
}

// IsActive is derived from the line list.
func (t *Table) IsActive() bool {
	return len(t.Items) > 0
}

// Total is recomputed from the lines on every read.
func (t *Table) Total() decimal.Decimal {
	return t.Items.Total()
}

// AddItem adds one unit of item, stamping OpenedAt on the first line.
func (t *Table) AddItem(item *MenuItem, now time.Time) {
	t.Items = t.Items.Add(item)
	if t.OpenedAt == nil {
		opened := now
		t.OpenedAt = &opened
	}
}

// AdjustQuantity changes a line's quantity. Emptying the table returns
// it to the free state.
func (t *Table) AdjustQuantity(menuItemID uuid.UUID, delta int) bool {
	items, ok := t.Items.Adjust(menuItemID, delta)
	if !ok {
		return false
	}
	t.Items = items
	if len(t.Items) == 0 {
		t.Reset()
	}
	return true
}

// Reset frees the table.
func (t *Table) Reset() {
	t.Items = OrderLines{}
	t.OpenedAt = nil
	t.CustomerName = nil
}

// MarshalJSON adds the derived fields.
func (t Table) MarshalJSON() ([]byte, error) {
	type alias Table
	items := t.Items
	if items == nil {
		items = OrderLines{}
	}
	a := alias(t)
	a.Items = items
	return json.Marshal(struct {
		alias
		IsActive bool            `json:"is_active"`
		Total    decimal.Decimal `json:"total"`
	}{
		alias:    a,
		IsActive: t.IsActive(),
		Total:    t.Total(),
	})
}
