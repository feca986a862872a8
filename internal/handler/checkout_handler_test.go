package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckoutService struct {
	checkoutCalls int
	quoteCalls    int
	err           error
}

func (f *fakeCheckoutService) Quote(ctx context.Context, req service.CheckoutRequest) (service.QuoteResponse, error) {
	f.quoteCalls++
	if f.err != nil {
		return service.QuoteResponse{}, f.err
	}
	return service.QuoteResponse{Subtotal: "30.00", TotalTax: "1.50", GrandTotal: "31.50"}, nil
}

func (f *fakeCheckoutService) Checkout(ctx context.Context, req service.CheckoutRequest) (service.InvoiceResponse, error) {
	f.checkoutCalls++
	if f.err != nil {
		return service.InvoiceResponse{}, f.err
	}
	return service.InvoiceResponse{ID: 1, TotalAmount: "31.50", TotalTax: "1.50"}, nil
}

func newCheckoutRouter(svc service.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewCheckoutHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func TestCheckoutEndpoint_Success(t *testing.T) {
	fake := &fakeCheckoutService{}
	router := newCheckoutRouter(fake)

	body, _ := json.Marshal(service.CheckoutRequest{Items: []service.CheckoutItemRequest{
		{ItemName: "Apples", Quantity: 3, PricePerItem: "10.00", CategoryID: 1},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, fake.checkoutCalls)

	var envelope struct {
		Status string                  `json:"status"`
		Data   service.InvoiceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, "31.50", envelope.Data.TotalAmount)
}

func TestCheckoutEndpoint_EmptyCartRejected(t *testing.T) {
	fake := &fakeCheckoutService{err: service.ErrEmptyCart}
	router := newCheckoutRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader([]byte(`{"items":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
}

func TestCheckoutEndpoint_MalformedBody(t *testing.T) {
	fake := &fakeCheckoutService{}
	router := newCheckoutRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader([]byte(`{"items":`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, fake.checkoutCalls, "service must not be called on a malformed payload")
}

func TestQuoteEndpoint_Success(t *testing.T) {
	fake := &fakeCheckoutService{}
	router := newCheckoutRouter(fake)

	body, _ := json.Marshal(service.CheckoutRequest{Items: []service.CheckoutItemRequest{
		{ItemName: "Apples", Quantity: 3, PricePerItem: "10.00", CategoryID: 1},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/quote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fake.quoteCalls)
	assert.Contains(t, w.Body.String(), "31.50")
}
