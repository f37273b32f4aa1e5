package request

import "github.com/shopspring/decimal"

// MenuItemRequest represents a create or update menu item request.
// Omitted fields are defaulted on create and left unchanged on update.
type MenuItemRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	ImageURL    *string          `json:"image_url" binding:"omitempty,max=512"`
	IsAvailable *bool            `json:"is_available"`
	Stock       *int             `json:"stock"`
}

// AvailabilityRequest toggles an item on or off the menu
type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// StockAdjustRequest moves stock by a signed delta
type StockAdjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// EnhanceDescriptionRequest asks for a better item description
type EnhanceDescriptionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryRequest represents a create category request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
