package request

import (
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// OpenSessionRequest represents an open cashier request
type OpenSessionRequest struct {
	OpeningBalance *decimal.Decimal `json:"opening_balance" binding:"required"`
}

// CloseSessionRequest represents a close cashier request
type CloseSessionRequest struct {
	ActualCash *decimal.Decimal `json:"actual_cash" binding:"required"`
}

// RecordExpenseRequest represents a record expense request
type RecordExpenseRequest struct {
	Description string           `json:"description" binding:"required,max=255"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Category    string           `json:"category" binding:"max=100"`
}

// ManualEntryRequest represents a manual inflow/outflow request
type ManualEntryRequest struct {
	Kind          *enum.ManualEntryKind `json:"kind" binding:"required"`
	Description   string                `json:"description" binding:"required,max=255"`
	Amount        *decimal.Decimal      `json:"amount" binding:"required"`
	PaymentMethod *enum.PaymentMethod   `json:"payment_method"`
}
