package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// EntryKind tags a feed entry as money in or money out.
type EntryKind string

const (
	EntrySale    EntryKind = "SALE"
	EntryExpense EntryKind = "EXPENSE"
)

// Entry is one line of the transactions feed. Amount is signed: sales
// positive, expenses negative.
type Entry struct {
	Kind          EntryKind       `json:"kind"`
	ID            uuid.UUID       `json:"id"`
	SessionID     uuid.UUID       `json:"session_id"`
	Timestamp     time.Time       `json:"timestamp"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Category      string          `json:"category,omitempty"`
	TableID       *int            `json:"table_id,omitempty"`
}

// SaleEntry lifts a record into the feed.
func SaleEntry(r *entity.DailyRecord) Entry {
	tableID := r.TableID
	return Entry{
		Kind:          EntrySale,
		ID:            r.ID,
		SessionID:     r.SessionID,
		Timestamp:     r.ClosedAt,
		Description:   r.Label(),
		Amount:        r.Total,
		PaymentMethod: r.PaymentMethod.String(),
		TableID:       &tableID,
	}
}

// ExpenseEntry lifts an expense into the feed.
func ExpenseEntry(e *entity.Expense) Entry {
	return Entry{
		Kind:        EntryExpense,
		ID:          e.ID,
		SessionID:   e.SessionID,
		Timestamp:   e.Timestamp,
		Description: e.Description,
		Amount:      e.Amount.Neg(),
		Category:    e.Category,
	}
}

// Feed merges records and expenses across all sessions, newest first.
func Feed(records []entity.DailyRecord, expenses []entity.Expense) []Entry {
	entries := make([]Entry, 0, len(records)+len(expenses))
	for i := range records {
		entries = append(entries, SaleEntry(&records[i]))
	}
	for i := range expenses {
		entries = append(entries, ExpenseEntry(&expenses[i]))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

// Between keeps entries with from <= timestamp < to. A zero bound is open.
func Between(entries []Entry, from, to time.Time) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !from.IsZero() && e.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && !e.Timestamp.Before(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Summary is the all-time profit picture.
type Summary struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Profit        decimal.Decimal `json:"profit"`
	SalesCount    int             `json:"sales_count"`
	ExpenseCount  int             `json:"expense_count"`
}

// Summarize totals revenue and expenses; profit is their difference.
func Summarize(records []entity.DailyRecord, expenses []entity.Expense) Summary {
	s := Summary{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		SalesCount:    len(records),
		ExpenseCount:  len(expenses),
	}
	for i := range records {
		s.TotalRevenue = s.TotalRevenue.Add(records[i].Total)
	}
	for i := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(expenses[i].Amount)
	}
	s.Profit = s.TotalRevenue.Sub(s.TotalExpenses)
	return s
}
