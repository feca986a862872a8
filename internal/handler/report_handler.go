package handler

import (
	"net/http"

	"pos/internal/service"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/reports")
	{
		reports.GET("/sales", h.GetSalesReport)
	}
}

// GetSalesReport returns the sales dashboard figures
// @Summary      Get sales report
// @Description  Total revenue, invoice count and revenue/units sold grouped by category name
// @Tags         reports
// @Produce      json
// @Success      200 {object}  response.Response{data=model.SalesReport}
// @Failure      500 {object}  response.Response
// @Router       /api/reports/sales [get]
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	report, err := h.reportService.GetSalesReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}
