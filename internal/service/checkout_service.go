package service

import (
	"context"
	"errors"
	"fmt"

	"pos/internal/model"
	"pos/internal/pricing"
	"pos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrEmptyCart rejects a checkout before any database access happens.
var ErrEmptyCart = errors.New("cart is empty")

// --- DTOs ---

type CheckoutItemRequest struct {
	ItemName     string `json:"item_name" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	PricePerItem string `json:"price_per_item" binding:"required"` // Decimal string, e.g. "10.00"
	CategoryID   uint   `json:"category_id" binding:"required"`
}

type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items"`
}

type QuotedLineResponse struct {
	ItemName     string `json:"item_name"`
	Quantity     int    `json:"quantity"`
	PricePerItem string `json:"price_per_item"`
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`
}

type QuoteResponse struct {
	Lines      []QuotedLineResponse `json:"lines"`
	Subtotal   string               `json:"subtotal"`
	TotalTax   string               `json:"total_tax"`
	GrandTotal string               `json:"grand_total"`
}

// --- Interface ---

type CheckoutService interface {
	// Quote prices a cart without committing anything.
	Quote(ctx context.Context, req CheckoutRequest) (QuoteResponse, error)
	// Checkout commits a non-empty cart as an invoice plus its items in a
	// single transaction and returns the committed invoice.
	Checkout(ctx context.Context, req CheckoutRequest) (InvoiceResponse, error)
}

type checkoutService struct {
	categoryRepo repository.CategoryRepository
	invoiceRepo  repository.InvoiceRepository
	txManager    repository.TransactionManager
}

func NewCheckoutService(
	categoryRepo repository.CategoryRepository,
	invoiceRepo repository.InvoiceRepository,
	txManager repository.TransactionManager,
) CheckoutService {
	return &checkoutService{
		categoryRepo: categoryRepo,
		invoiceRepo:  invoiceRepo,
		txManager:    txManager,
	}
}

// --- Implementation ---

func (s *checkoutService) Quote(ctx context.Context, req CheckoutRequest) (QuoteResponse, error) {
	cart, err := s.buildCart(ctx, req)
	if err != nil {
		return QuoteResponse{}, err
	}

	totals := pricing.Aggregate(cart)

	lines := make([]QuotedLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, QuotedLineResponse{
			ItemName:     line.Name,
			Quantity:     line.Quantity,
			PricePerItem: line.UnitPrice.StringFixed(2),
			CategoryID:   line.Category.ID,
			CategoryName: line.Category.Name,
			Tax:          line.Tax.StringFixed(2),
			Total:        line.Total.StringFixed(2),
		})
	}

	return QuoteResponse{
		Lines:      lines,
		Subtotal:   totals.Subtotal.StringFixed(2),
		TotalTax:   totals.TotalTax.StringFixed(2),
		GrandTotal: totals.GrandTotal.StringFixed(2),
	}, nil
}

func (s *checkoutService) Checkout(ctx context.Context, req CheckoutRequest) (InvoiceResponse, error) {
	cart, err := s.buildCart(ctx, req)
	if err != nil {
		return InvoiceResponse{}, err
	}

	totals := pricing.Aggregate(cart)

	invoice := model.Invoice{
		TotalAmount: totals.GrandTotal,
		TotalTax:    totals.TotalTax,
	}

	// Invoice first, items second, one transaction: item rows never exist
	// without their parent, and a failed item write rolls the invoice back
	// instead of leaving an orphan.
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.invoiceRepo.Create(txCtx, &invoice); err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		items := make([]model.InvoiceItem, 0, len(cart.Lines))
		for _, line := range cart.Lines {
			categoryID := line.Category.ID
			items = append(items, model.InvoiceItem{
				InvoiceID:    invoice.ID,
				ItemName:     line.Name,
				Quantity:     line.Quantity,
				PricePerItem: line.UnitPrice,
				CategoryID:   &categoryID,
				Tax:          line.Tax,
			})
		}

		if err := s.invoiceRepo.CreateItems(txCtx, items); err != nil {
			return fmt.Errorf("failed to create invoice items: %w", err)
		}

		return nil
	})
	if err != nil {
		return InvoiceResponse{}, err
	}

	committed, err := s.invoiceRepo.FindByIDWithItems(ctx, invoice.ID)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("failed to fetch committed invoice: %w", err)
	}

	return toInvoiceResponse(*committed, true), nil
}

// buildCart validates and prices every requested line against the current
// category table. Any invalid line rejects the whole request.
func (s *checkoutService) buildCart(ctx context.Context, req CheckoutRequest) (pricing.Cart, error) {
	if len(req.Items) == 0 {
		return pricing.Cart{}, ErrEmptyCart
	}

	var cart pricing.Cart
	for i, item := range req.Items {
		price, err := decimal.NewFromString(item.PricePerItem)
		if err != nil {
			return pricing.Cart{}, fmt.Errorf("line %d: invalid price_per_item: %w", i+1, err)
		}

		category, err := s.categoryRepo.FindByID(ctx, item.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pricing.Cart{}, fmt.Errorf("line %d: category %d not found", i+1, item.CategoryID)
			}
			return pricing.Cart{}, fmt.Errorf("line %d: failed to resolve category: %w", i+1, err)
		}

		cart, err = pricing.AddLine(cart, item.ItemName, item.Quantity, price, *category)
		if err != nil {
			return pricing.Cart{}, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return cart, nil
}
