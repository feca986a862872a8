package handler

import (
	"net/http"

	"pos/internal/service"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/api/checkout")
	{
		checkout.POST("", h.Checkout)
		checkout.POST("/quote", h.Quote)
	}
}

// Quote prices a cart without committing it
// @Summary      Quote a cart
// @Description  Computes per-line tax/total and cart subtotal, total tax and grand total without writing anything
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CheckoutRequest  true  "Cart Payload"
// @Success      200      {object}  response.Response{data=service.QuoteResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/checkout/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	quote, err := h.checkoutService.Quote(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}

// Checkout commits the cart as an invoice with items
// @Summary      Checkout a cart
// @Description  Commits a non-empty cart as one invoice plus its line items in a single transaction
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CheckoutRequest  true  "Cart Payload"
// @Success      201      {object}  response.Response{data=service.InvoiceResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	invoice, err := h.checkoutService.Checkout(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, invoice))
}
