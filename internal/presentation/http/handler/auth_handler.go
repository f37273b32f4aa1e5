package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/application/service"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/request"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles operator login and operator management
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func tokenResponse(output *service.LoginOutput) gin.H {
	return gin.H{
		"operator":      output.Operator,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
		"expires_in":    output.ExpiresIn,
	}
}

// Login handles operator login
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", tokenResponse(output))
}

// RefreshToken exchanges a refresh token for a new pair
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	output, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", tokenResponse(output))
}

// Me returns the logged-in operator
func (h *AuthHandler) Me(c *gin.Context) {
	operatorID := GetOperatorID(c)
	if operatorID == nil {
		response.Unauthorized(c, "Operator not authenticated")
		return
	}

	operator, err := h.authService.GetOperator(c.Request.Context(), *operatorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operator retrieved", operator)
}

// ListOperators lists all operators
func (h *AuthHandler) ListOperators(c *gin.Context) {
	operators, err := h.authService.ListOperators(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operators retrieved", operators)
}

// CreateOperator registers a new operator
func (h *AuthHandler) CreateOperator(c *gin.Context) {
	var req request.CreateOperatorRequest
	if !bindJSON(c, &req) {
		return
	}

	role := enum.OperatorRoleCashier
	if req.Role != nil {
		role = *req.Role
	}

	operator, err := h.authService.CreateOperator(c.Request.Context(), &service.CreateOperatorInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Role:        role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Operator created", operator)
}
