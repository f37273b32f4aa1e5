package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/application/service"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/request"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles storefront settings
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetFooter returns the storefront footer
func (h *SettingsHandler) GetFooter(c *gin.Context) {
	footer, err := h.settingsService.GetFooter(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Footer retrieved", footer)
}

// UpdateFooter replaces the storefront footer
func (h *SettingsHandler) UpdateFooter(c *gin.Context) {
	var req request.FooterRequest
	if !bindJSON(c, &req) {
		return
	}

	footer, err := h.settingsService.UpdateFooter(c.Request.Context(), &entity.FooterData{
		BrandName:   req.BrandName,
		Description: req.Description,
		Location:    req.Location,
		Hours:       req.Hours,
		Copyright:   req.Copyright,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Footer updated", footer)
}
