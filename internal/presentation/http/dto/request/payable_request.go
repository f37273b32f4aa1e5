package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePayableRequest represents a create bill request
type CreatePayableRequest struct {
	Description string           `json:"description" binding:"required,max=255"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	DueDate     time.Time        `json:"due_date" binding:"required"`
}

// MarkPaidRequest represents a pay bill request
type MarkPaidRequest struct {
	PaidAt        *time.Time `json:"paid_at"`
	RecordExpense bool       `json:"record_expense"`
}
