package ledger

import (
	"time"

	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AgingBucket totals pending bills by how late they are.
type AgingBucket struct {
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// Aging is the accounts payable picture at a point in time.
type Aging struct {
	AsOf         time.Time       `json:"as_of"`
	Buckets      []AgingBucket   `json:"buckets"`
	PendingCount int             `json:"pending_count"`
	TotalPending decimal.Decimal `json:"total_pending"`
	PaidCount    int             `json:"paid_count"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
}

var agingLabels = []string{"current", "1-30", "31-60", "61-90", "90+"}

func agingBucket(daysOverdue int) int {
	switch {
	case daysOverdue <= 0:
		return 0
	case daysOverdue <= 30:
		return 1
	case daysOverdue <= 60:
		return 2
	case daysOverdue <= 90:
		return 3
	default:
		return 4
	}
}

// PayablesAging buckets pending bills by days past due as of now.
// Paid bills only contribute to the paid totals.
func PayablesAging(payables []entity.Payable, now time.Time) Aging {
	a := Aging{
		AsOf:         now,
		Buckets:      make([]AgingBucket, len(agingLabels)),
		TotalPending: decimal.Zero,
		TotalPaid:    decimal.Zero,
	}
	for i, label := range agingLabels {
		a.Buckets[i] = AgingBucket{Label: label, Amount: decimal.Zero}
	}

	for i := range payables {
		p := &payables[i]
		if p.IsPaid() {
			a.PaidCount++
			a.TotalPaid = a.TotalPaid.Add(p.Amount)
			continue
		}
		b := &a.Buckets[agingBucket(p.DaysOverdue(now))]
		b.Count++
		b.Amount = b.Amount.Add(p.Amount)
		a.PendingCount++
		a.TotalPending = a.TotalPending.Add(p.Amount)
	}
	return a
}
