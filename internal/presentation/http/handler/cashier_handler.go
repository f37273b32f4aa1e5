package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/application/service"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/request"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/response"
	"github.com/sertaogourmet/pos-api/pkg/pagination"
)

// CashierHandler handles the cashier session lifecycle and its ledger
type CashierHandler struct {
	cashierService *service.CashierService
}

// NewCashierHandler creates a new cashier handler
func NewCashierHandler(cashierService *service.CashierService) *CashierHandler {
	return &CashierHandler{cashierService: cashierService}
}

// Current returns the open session with its running statement, or null
func (h *CashierHandler) Current(c *gin.Context) {
	view, err := h.cashierService.CurrentView(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if view == nil {
		response.OK(c, "No cashier session is open", nil)
		return
	}

	response.OK(c, "Cashier session retrieved", view)
}

// Open starts a cashier session
func (h *CashierHandler) Open(c *gin.Context) {
	var req request.OpenSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.cashierService.Open(c.Request.Context(), &service.OpenSessionInput{
		OpeningBalance: *req.OpeningBalance,
		OperatorID:     GetOperatorID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cashier opened", session)
}

// Close closes the open session against the counted cash
func (h *CashierHandler) Close(c *gin.Context) {
	var req request.CloseSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cashierService.Close(c.Request.Context(), &service.CloseSessionInput{
		ActualCash: *req.ActualCash,
		OperatorID: GetOperatorID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashier closed", view)
}

// History lists sessions, newest first
func (h *CashierHandler) History(c *gin.Context) {
	params := pagination.FromQuery(c.Query("page"), c.Query("limit"))

	result, err := h.cashierService.History(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Cashier sessions retrieved", result)
}

// SessionDetail returns one session with its recomputed statement
func (h *CashierHandler) SessionDetail(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.cashierService.SessionDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashier session retrieved", view)
}

// RecordExpense books an expense against the open session
func (h *CashierHandler) RecordExpense(c *gin.Context) {
	var req request.RecordExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.cashierService.RecordExpense(c.Request.Context(), &service.RecordExpenseInput{
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    req.Category,
		OperatorID:  GetOperatorID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded", expense)
}

// RecordManualEntry books an operator-typed inflow or outflow
func (h *CashierHandler) RecordManualEntry(c *gin.Context) {
	var req request.ManualEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	method := enum.PaymentMethodCash
	if req.PaymentMethod != nil {
		method = *req.PaymentMethod
	}

	result, err := h.cashierService.RecordManualEntry(c.Request.Context(), &service.ManualEntryInput{
		Kind:          *req.Kind,
		Description:   req.Description,
		Amount:        *req.Amount,
		PaymentMethod: method,
		OperatorID:    GetOperatorID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Manual entry recorded", result)
}

// DeleteOperation removes a sale or expense from the ledger
func (h *CashierHandler) DeleteOperation(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := h.cashierService.DeleteOperation(c.Request.Context(), c.Param("kind"), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operation deleted", nil)
}
