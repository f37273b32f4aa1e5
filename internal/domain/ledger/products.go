package ledger

import (
	"sort"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductSales accumulates every line sold for one menu item.
type ProductSales struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// TopProducts ranks items by units sold across all records. The name is
// the first snapshot seen. Ties keep first-seen order; no secondary key
// is applied. limit <= 0 returns every item.
func TopProducts(records []entity.DailyRecord, limit int) []ProductSales {
	index := make(map[uuid.UUID]int)
	var out []ProductSales

	for i := range records {
		for _, line := range records[i].Items {
			pos, ok := index[line.MenuItemID]
			if !ok {
				pos = len(out)
				index[line.MenuItemID] = pos
				out = append(out, ProductSales{
					MenuItemID: line.MenuItemID,
					Name:       line.Name,
					Revenue:    decimal.Zero,
				})
			}
			out[pos].Quantity += line.Quantity
			out[pos].Revenue = out[pos].Revenue.Add(line.Subtotal())
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quantity > out[j].Quantity
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []ProductSales{}
	}
	return out
}
