package request

import (
	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
)

// QuickSaleItemRequest is one cart line
type QuickSaleItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
}

// QuickSaleRequest represents a walk-up sale request
type QuickSaleRequest struct {
	Items         []QuickSaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod *enum.PaymentMethod    `json:"payment_method" binding:"required"`
	CustomerName  *string                `json:"customer_name" binding:"omitempty,max=255"`
}

// AddTableItemRequest represents an add item to table request
type AddTableItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
}

// AdjustQuantityRequest represents a quantity change on a table line
type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CustomerNameRequest sets or clears a table's customer name
type CustomerNameRequest struct {
	CustomerName string `json:"customer_name" binding:"max=255"`
}

// CheckoutRequest represents a table checkout request
type CheckoutRequest struct {
	PaymentMethod *enum.PaymentMethod `json:"payment_method" binding:"required"`
}
