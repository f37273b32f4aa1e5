package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is a snapshot of a menu item taken when it was added to an
// order. Later catalog edits never reach it.
type OrderLine struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// NewOrderLine copies name and price out of item.
func NewOrderLine(item *MenuItem, quantity int) OrderLine {
	return OrderLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   quantity,
	}
}

// Subtotal is price x quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderLines is the ordered line list of a table, cart or sale record.
type OrderLines []OrderLine

// Total is the sum of line subtotals, computed on every call.
func (ls OrderLines) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range ls {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Units is the total quantity across lines.
func (ls OrderLines) Units() int {
	n := 0
	for _, l := range ls {
		n += l.Quantity
	}
	return n
}

func (ls OrderLines) index(menuItemID uuid.UUID) int {
	for i, l := range ls {
		if l.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}

// Add increments the line for item by one, or appends a fresh snapshot
// line with quantity 1.
func (ls OrderLines) Add(item *MenuItem) OrderLines {
	if i := ls.index(item.ID); i >= 0 {
		out := ls.Clone()
		out[i].Quantity++
		return out
	}
	return append(ls.Clone(), NewOrderLine(item, 1))
}

// Adjust applies delta to a line's quantity. A quantity that reaches zero
// or below removes the line. ok is false when no line matches.
func (ls OrderLines) Adjust(menuItemID uuid.UUID, delta int) (out OrderLines, ok bool) {
	i := ls.index(menuItemID)
	if i < 0 {
		return ls, false
	}

	out = ls.Clone()
	q := out[i].Quantity + delta
	if q > 0 {
		out[i].Quantity = q
		return out, true
	}
	return append(out[:i], out[i+1:]...), true
}

// Clone returns an independent copy.
func (ls OrderLines) Clone() OrderLines {
	if ls == nil {
		return nil
	}
	out := make(OrderLines, len(ls))
	copy(out, ls)
	return out
}
