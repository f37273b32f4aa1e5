package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/application/service"
	"github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/request"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/response"
)

// MenuHandler handles the catalog: menu items and categories
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// PublicMenu lists available items, optionally by category
func (h *MenuHandler) PublicMenu(c *gin.Context) {
	items, err := h.menuService.ListMenu(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved", items)
}

// ListItems lists every item, including unavailable ones
func (h *MenuHandler) ListItems(c *gin.Context) {
	availableOnly, _ := strconv.ParseBool(c.Query("available"))

	items, err := h.menuService.ListItems(c.Request.Context(), repository.MenuFilter{
		Category:      c.Query("category"),
		Search:        c.Query("search"),
		AvailableOnly: availableOnly,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu items retrieved", items)
}

func itemInput(req *request.MenuItemRequest) *service.MenuItemInput {
	return &service.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
		Stock:       req.Stock,
	}
}

// CreateItem adds a menu item
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req request.MenuItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), itemInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created", item)
}

// UpdateItem changes the given fields of a menu item
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req request.MenuItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), id, itemInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated", item)
}

// SetAvailability toggles a menu item
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req request.AvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.menuService.SetAvailability(c.Request.Context(), id, *req.IsAvailable)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Availability updated", item)
}

// AdjustStock moves an item's stock
func (h *MenuHandler) AdjustStock(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req request.StockAdjustRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.menuService.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock updated", item)
}

// EnhanceDescription suggests a better description; it falls back to the input
func (h *MenuHandler) EnhanceDescription(c *gin.Context) {
	var req request.EnhanceDescriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	description := h.menuService.EnhanceDescription(c.Request.Context(), req.Name, req.Description)
	response.OK(c, "Description generated", gin.H{"description": description})
}

// ListCategories lists categories in display order
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved", categories)
}

// CreateCategory appends a category
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req request.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.menuService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created", category)
}

// DeleteCategory removes a category
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := h.menuService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category deleted", nil)
}
