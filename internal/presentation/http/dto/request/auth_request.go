package request

import "github.com/sertaogourmet/pos-api/internal/domain/enum"

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateOperatorRequest represents a create operator request
type CreateOperatorRequest struct {
	Username    string             `json:"username" binding:"required,max=100"`
	DisplayName string             `json:"display_name" binding:"max=255"`
	Password    string             `json:"password" binding:"required,min=6"`
	Role        *enum.OperatorRole `json:"role"`
}
