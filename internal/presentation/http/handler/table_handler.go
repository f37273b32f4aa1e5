package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/application/service"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/request"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/response"
)

// TableHandler handles dine-in tables and walk-up sales
type TableHandler struct {
	tableService   *service.TableService
	cashierService *service.CashierService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService, cashierService *service.CashierService) *TableHandler {
	return &TableHandler{tableService: tableService, cashierService: cashierService}
}

// List returns the whole table pool
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.tableService.ListTables(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tables retrieved", tables)
}

// Get returns one table
func (h *TableHandler) Get(c *gin.Context) {
	id, ok := paramTableID(c)
	if !ok {
		return
	}

	table, err := h.tableService.GetTable(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table retrieved", table)
}

// AddItem adds one unit of a menu item to the table
func (h *TableHandler) AddItem(c *gin.Context) {
	id, ok := paramTableID(c)
	if !ok {
		return
	}
	var req request.AddTableItemRequest
	if !bindJSON(c, &req) {
		return
	}

	table, err := h.tableService.AddItem(c.Request.Context(), id, req.MenuItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", table)
}

// AdjustQuantity changes a line's quantity
func (h *TableHandler) AdjustQuantity(c *gin.Context) {
	id, ok := paramTableID(c)
	if !ok {
		return
	}
	menuItemID, ok := paramUUID(c, "menuItemId")
	if !ok {
		return
	}
	var req request.AdjustQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	table, err := h.tableService.AdjustQuantity(c.Request.Context(), id, menuItemID, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", table)
}

// SetCustomer sets or clears the table's customer name
func (h *TableHandler) SetCustomer(c *gin.Context) {
	id, ok := paramTableID(c)
	if !ok {
		return
	}
	var req request.CustomerNameRequest
	if !bindJSON(c, &req) {
		return
	}

	table, err := h.tableService.SetCustomerName(c.Request.Context(), id, req.CustomerName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated", table)
}

// Checkout turns the table's order into a sale and frees the table
func (h *TableHandler) Checkout(c *gin.Context) {
	id, ok := paramTableID(c)
	if !ok {
		return
	}
	var req request.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.tableService.Checkout(c.Request.Context(), id, &service.CheckoutInput{
		PaymentMethod: *req.PaymentMethod,
		OperatorID:    GetOperatorID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded", record)
}

// QuickSale records a walk-up sale priced from the catalog
func (h *TableHandler) QuickSale(c *gin.Context) {
	var req request.QuickSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]service.QuickSaleItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.QuickSaleItem{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}

	record, err := h.tableService.QuickSale(c.Request.Context(), &service.QuickSaleInput{
		Items:         items,
		PaymentMethod: *req.PaymentMethod,
		CustomerName:  req.CustomerName,
		OperatorID:    GetOperatorID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded", record)
}

// GetSale returns one sale record
func (h *TableHandler) GetSale(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	record, err := h.cashierService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved", record)
}
