package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/application/service"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/request"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/response"
)

// PayableHandler handles bills to pay
type PayableHandler struct {
	payableService *service.PayableService
}

// NewPayableHandler creates a new payable handler
func NewPayableHandler(payableService *service.PayableService) *PayableHandler {
	return &PayableHandler{payableService: payableService}
}

// List lists bills by due date, optionally by status
func (h *PayableHandler) List(c *gin.Context) {
	var status *enum.PayableStatus
	if raw := c.Query("status"); raw != "" {
		s, ok := enum.ParsePayableStatus(raw)
		if !ok {
			response.BadRequest(c, "Invalid status: "+raw)
			return
		}
		status = &s
	}

	payables, err := h.payableService.ListPayables(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payables retrieved", payables)
}

// Create registers a pending bill
func (h *PayableHandler) Create(c *gin.Context) {
	var req request.CreatePayableRequest
	if !bindJSON(c, &req) {
		return
	}

	payable, err := h.payableService.CreatePayable(c.Request.Context(), &service.CreatePayableInput{
		Description: req.Description,
		Amount:      *req.Amount,
		DueDate:     req.DueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payable created", payable)
}

// MarkPaid settles a bill, optionally booking the expense in the open session
func (h *PayableHandler) MarkPaid(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req request.MarkPaidRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	output, err := h.payableService.MarkPaid(c.Request.Context(), id, &service.MarkPaidInput{
		PaidAt:        req.PaidAt,
		RecordExpense: req.RecordExpense,
		OperatorID:    GetOperatorID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Payable paid"
	if output.Message != "" {
		message = output.Message
	}
	response.OK(c, message, output)
}

// Delete removes a bill
func (h *PayableHandler) Delete(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := h.payableService.DeletePayable(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payable deleted", nil)
}
