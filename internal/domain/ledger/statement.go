// Package ledger derives read-only financial views from sale records and
// expenses. Nothing here mutates its inputs or touches storage, so every
// figure can be recomputed from persisted history at any time.
package ledger

import (
	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// VarianceClass grades a cash-count discrepancy.
type VarianceClass string

const (
	VarianceNormal   VarianceClass = "normal"
	VarianceWarning  VarianceClass = "warning"
	VarianceCritical VarianceClass = "critical"
)

// Thresholds are absolute variance percentages of expected cash.
type Thresholds struct {
	WarningPct  decimal.Decimal
	CriticalPct decimal.Decimal
}

// DefaultThresholds grade up to 1% as normal and up to 5% as a warning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WarningPct:  decimal.NewFromInt(1),
		CriticalPct: decimal.NewFromInt(5),
	}
}

// Statement is the cash position of one session.
type Statement struct {
	SessionID            uuid.UUID       `json:"session_id"`
	Status               string          `json:"status"`
	OpeningBalance       decimal.Decimal `json:"opening_balance"`
	CashSales            decimal.Decimal `json:"cash_sales"`
	DigitalSales         decimal.Decimal `json:"digital_sales"`
	PixSales             decimal.Decimal `json:"pix_sales"`
	CardSales            decimal.Decimal `json:"card_sales"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	ExpectedCashInDrawer decimal.Decimal `json:"expected_cash_in_drawer"`
	SalesCount           int             `json:"sales_count"`
	ExpenseCount         int             `json:"expense_count"`

	// Set only once a physical count exists (closed sessions).
	ClosingBalance  *decimal.Decimal `json:"closing_balance,omitempty"`
	Variance        *decimal.Decimal `json:"variance,omitempty"`
	VariancePercent *decimal.Decimal `json:"variance_percent,omitempty"`
	VarianceClass   VarianceClass    `json:"variance_class,omitempty"`
}

// SessionStatement folds the records and expenses tagged with session's id.
// Entries tagged with other sessions are ignored, so callers may pass the
// full history. Every expense is assumed to leave the physical drawer;
// only cash-tendered records add to it.
func SessionStatement(session *entity.CashierSession, records []entity.DailyRecord, expenses []entity.Expense, th Thresholds) Statement {
	st := Statement{
		SessionID:      session.ID,
		Status:         session.Status.String(),
		OpeningBalance: session.OpeningBalance,
		CashSales:      decimal.Zero,
		DigitalSales:   decimal.Zero,
		PixSales:       decimal.Zero,
		CardSales:      decimal.Zero,
		TotalExpenses:  decimal.Zero,
	}

	for i := range records {
		r := &records[i]
		if r.SessionID != session.ID {
			continue
		}
		st.SalesCount++
		switch r.PaymentMethod {
		case enum.PaymentMethodCash:
			st.CashSales = st.CashSales.Add(r.Total)
		case enum.PaymentMethodPIX:
			st.PixSales = st.PixSales.Add(r.Total)
			st.DigitalSales = st.DigitalSales.Add(r.Total)
		default:
			st.CardSales = st.CardSales.Add(r.Total)
			st.DigitalSales = st.DigitalSales.Add(r.Total)
		}
	}

	for i := range expenses {
		e := &expenses[i]
		if e.SessionID != session.ID {
			continue
		}
		st.ExpenseCount++
		st.TotalExpenses = st.TotalExpenses.Add(e.Amount)
	}

	st.TotalRevenue = st.CashSales.Add(st.DigitalSales)
	st.ExpectedCashInDrawer = ExpectedCash(session.OpeningBalance, st.CashSales, st.TotalExpenses)

	if session.ClosingBalance != nil {
		st = st.Reconcile(*session.ClosingBalance, th)
	}
	return st
}

// ExpectedCash is opening + cash sales - expenses.
func ExpectedCash(opening, cashSales, expenses decimal.Decimal) decimal.Decimal {
	return opening.Add(cashSales).Sub(expenses)
}

// Reconcile returns a copy of st compared against a physical count.
func (st Statement) Reconcile(counted decimal.Decimal, th Thresholds) Statement {
	variance := counted.Sub(st.ExpectedCashInDrawer)
	pct := VariancePercent(variance, st.ExpectedCashInDrawer)

	st.ClosingBalance = &counted
	st.Variance = &variance
	st.VariancePercent = &pct
	st.VarianceClass = Classify(pct, th)
	return st
}

// VariancePercent is variance relative to expected, in percent, rounded
// to two places. With nothing expected any discrepancy counts as 100%.
func VariancePercent(variance, expected decimal.Decimal) decimal.Decimal {
	if variance.IsZero() {
		return decimal.Zero
	}
	if expected.IsZero() {
		if variance.IsNegative() {
			return hundred.Neg()
		}
		return hundred
	}
	return variance.Div(expected.Abs()).Mul(hundred).Round(2)
}

// Classify grades an absolute variance percentage.
func Classify(pct decimal.Decimal, th Thresholds) VarianceClass {
	abs := pct.Abs()
	switch {
	case abs.LessThanOrEqual(th.WarningPct):
		return VarianceNormal
	case abs.LessThanOrEqual(th.CriticalPct):
		return VarianceWarning
	default:
		return VarianceCritical
	}
}
