package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/application/service"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus(c.Request.Context()))
}

// PreviewSale builds a sale receipt without printing it.
func (h *PrinterHandler) PreviewSale(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	receipt, err := h.printerService.SaleReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt generated", gin.H{"receipt": receipt})
}

// PrintSale prints a sale receipt.
func (h *PrinterHandler) PrintSale(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	receipt, err := h.printerService.PrintSaleReceipt(c.Request.Context(), id)
	if err != nil {
		// Receipt was built but printing failed
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{"receipt": receipt})
}

// PrintSession prints a cashier session report.
func (h *PrinterHandler) PrintSession(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	report, err := h.printerService.PrintSessionReport(c.Request.Context(), id)
	if err != nil {
		if report != nil {
			response.OK(c, "Report generated but printing failed", gin.H{
				"report":  report,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Session report printed successfully", gin.H{"report": report})
}
