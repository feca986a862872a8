package handler

import (
	"net/http"

	"pos/internal/service"
	"pos/pkg/pagination"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.GET("/:id/pdf", h.DownloadPDF)
	}
}

// ListInvoices returns a paginated invoice history, newest first
// @Summary      List invoices
// @Description  Retrieves a paginated list of committed invoices ordered by creation time descending
// @Tags         invoices
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	params := pagination.Parse(c)

	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, invoices, total, params.Page, params.Limit))
}

// GetInvoice returns one invoice with its items
// @Summary      Get invoice details
// @Description  Retrieves a single invoice with its line items; deleted categories display as "Uncategorized"
// @Tags         invoices
// @Produce      json
// @Param        id  path      int  true  "Invoice ID"
// @Success      200 {object}  response.Response{data=service.InvoiceResponse}
// @Failure      404 {object}  response.Response
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoice))
}

// DownloadPDF renders the invoice as a PDF attachment
// @Summary      Download invoice PDF
// @Description  Renders the invoice as a PDF with columns Item, Category, Qty, Price, Tax, Total
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  int  true  "Invoice ID"
// @Success      200 {file}    file
// @Failure      404 {object}  response.Response
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	data, filename, err := h.invoiceService.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
