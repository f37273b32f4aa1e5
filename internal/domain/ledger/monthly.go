package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

func monthOf(t time.Time, loc *time.Location) MonthKey {
	y, m, _ := t.In(loc).Date()
	return MonthKey{Year: y, Month: m}
}

func (k MonthKey) after(o MonthKey) bool {
	if k.Year != o.Year {
		return k.Year > o.Year
	}
	return k.Month > o.Month
}

// String renders the key as "2026-03".
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// MonthlyTotals is one row of the profit and loss rollup.
type MonthlyTotals struct {
	Period       string          `json:"period"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	Balance      decimal.Decimal `json:"balance"`
	SalesCount   int             `json:"sales_count"`
	ExpenseCount int             `json:"expense_count"`
}

// MonthlyRollup groups records by the month they closed in and expenses by
// the month of their timestamp, in loc. Rows are sorted newest month
// first by (year, month), never by label.
func MonthlyRollup(records []entity.DailyRecord, expenses []entity.Expense, loc *time.Location) []MonthlyTotals {
	if loc == nil {
		loc = time.UTC
	}

	groups := make(map[MonthKey]*MonthlyTotals)
	get := func(k MonthKey) *MonthlyTotals {
		g, ok := groups[k]
		if !ok {
			g = &MonthlyTotals{
				Period:   k.String(),
				Year:     k.Year,
				Month:    int(k.Month),
				Revenue:  decimal.Zero,
				Expenses: decimal.Zero,
			}
			groups[k] = g
		}
		return g
	}

	for i := range records {
		g := get(monthOf(records[i].ClosedAt, loc))
		g.Revenue = g.Revenue.Add(records[i].Total)
		g.SalesCount++
	}
	for i := range expenses {
		g := get(monthOf(expenses[i].Timestamp, loc))
		g.Expenses = g.Expenses.Add(expenses[i].Amount)
		g.ExpenseCount++
	}

	keys := make([]MonthKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].after(keys[j]) })

	out := make([]MonthlyTotals, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		g.Balance = g.Revenue.Sub(g.Expenses)
		out = append(out, *g)
	}
	return out
}
