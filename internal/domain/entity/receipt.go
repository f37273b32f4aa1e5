package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptHeader is printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Location  string `json:"location,omitempty"`
	Hours     string `json:"hours,omitempty"`
}

// ReceiptLine represents a single line item on a receipt.
type ReceiptLine struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Receipt is a printable view of a sale record, composed at print time.
type Receipt struct {
	Header        ReceiptHeader   `json:"header"`
	Number        string          `json:"number"`
	Date          time.Time       `json:"date"`
	Label         string          `json:"label"`
	Customer      string          `json:"customer,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Lines         []ReceiptLine   `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	Footer        string          `json:"footer,omitempty"`
}

// SessionReport is the printable close-out of a cashier session.
type SessionReport struct {
	StoreName      string           `json:"store_name"`
	Number         string           `json:"number"`
	OpenedAt       time.Time        `json:"opened_at"`
	ClosedAt       *time.Time       `json:"closed_at,omitempty"`
	OpeningBalance decimal.Decimal  `json:"opening_balance"`
	CashSales      decimal.Decimal  `json:"cash_sales"`
	PixSales       decimal.Decimal  `json:"pix_sales"`
	CardSales      decimal.Decimal  `json:"card_sales"`
	TotalExpenses  decimal.Decimal  `json:"total_expenses"`
	Expected       decimal.Decimal  `json:"expected_cash"`
	Counted        *decimal.Decimal `json:"counted_cash,omitempty"`
	Variance       *decimal.Decimal `json:"variance,omitempty"`
	VarianceClass  string           `json:"variance_class,omitempty"`
	SalesCount     int              `json:"sales_count"`
	ExpenseCount   int              `json:"expense_count"`
}
