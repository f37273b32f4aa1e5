package handler

import (
	"bytes"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sertaogourmet/pos-api/internal/application/service"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles the cross-session ledger reports
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary returns all-time totals
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved", summary)
}

// parseBound accepts RFC 3339 timestamps or plain dates.
func parseBound(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Feed returns the merged sales and expenses, newest first
func (h *ReportHandler) Feed(c *gin.Context) {
	from, ok := parseBound(c.Query("from"))
	if !ok {
		response.BadRequest(c, "Invalid from date")
		return
	}
	to, ok := parseBound(c.Query("to"))
	if !ok {
		response.BadRequest(c, "Invalid to date")
		return
	}
	// A bare end date covers the whole day.
	if raw := c.Query("to"); len(raw) == len("2006-01-02") {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	feed, err := h.reportService.Feed(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Feed retrieved", feed)
}

// Monthly returns revenue and expenses per calendar month
func (h *ReportHandler) Monthly(c *gin.Context) {
	months, err := h.reportService.Monthly(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly report retrieved", months)
}

// TopProducts ranks products by quantity sold
func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	products, err := h.reportService.TopProducts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved", products)
}

// PayablesAging buckets pending bills by days overdue
func (h *ReportHandler) PayablesAging(c *gin.Context) {
	aging, err := h.reportService.PayablesAging(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payables aging retrieved", aging)
}

// ExportXLSX downloads the ledger as a spreadsheet
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reportService.ExportXLSX(c.Request.Context(), &buf); err != nil {
		response.Error(c, err)
		return
	}

	filename := "relatorio-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, xlsxContentType, buf.Bytes())
}
