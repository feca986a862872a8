package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pos/internal/model"
	"pos/internal/pdf"
	"pos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type InvoiceItemResponse struct {
	ID           uint   `json:"id"`
	ItemName     string `json:"item_name"`
	Quantity     int    `json:"quantity"`
	PricePerItem string `json:"price_per_item"`
	CategoryName string `json:"category_name"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`
}

type InvoiceResponse struct {
	ID          uint                  `json:"id"`
	CreatedAt   string                `json:"created_at"`
	TotalAmount string                `json:"total_amount"`
	TotalTax    string                `json:"total_tax"`
	Items       []InvoiceItemResponse `json:"items,omitempty"`
}

// --- Interface ---

type InvoiceService interface {
	ListInvoices(ctx context.Context, page, limit int) ([]InvoiceResponse, int64, error)
	GetInvoice(ctx context.Context, id uint) (InvoiceResponse, error)
	// GeneratePDF renders the invoice as a downloadable PDF document.
	GeneratePDF(ctx context.Context, id uint) ([]byte, string, error)
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	renderer    pdf.Renderer
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository, renderer pdf.Renderer) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
	}
}

// --- Implementation ---

func (s *invoiceService) ListInvoices(ctx context.Context, page, limit int) ([]InvoiceResponse, int64, error) {
	invoices, total, err := s.invoiceRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	res := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		res = append(res, toInvoiceResponse(inv, false))
	}

	return res, total, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id uint) (InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceResponse{}, fmt.Errorf("invoice not found")
		}
		return InvoiceResponse{}, fmt.Errorf("failed to fetch invoice: %w", err)
	}

	return toInvoiceResponse(*invoice, true), nil
}

func (s *invoiceService) GeneratePDF(ctx context.Context, id uint) ([]byte, string, error) {
	invoice, err := s.invoiceRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("invoice not found")
		}
		return nil, "", fmt.Errorf("failed to fetch invoice: %w", err)
	}

	doc := pdf.InvoiceDocument{
		InvoiceID: invoice.ID,
		IssuedAt:  invoice.CreatedAt.Format("2006-01-02"),
	}

	subtotal := invoice.TotalAmount.Sub(invoice.TotalTax)
	doc.Subtotal = subtotal.StringFixed(2)
	doc.TotalTax = invoice.TotalTax.StringFixed(2)
	doc.GrandTotal = invoice.TotalAmount.StringFixed(2)

	for _, item := range invoice.Items {
		doc.Lines = append(doc.Lines, pdf.InvoiceLine{
			Item:     item.ItemName,
			Category: categoryDisplayName(item.Category),
			Qty:      item.Quantity,
			Price:    item.PricePerItem.StringFixed(2),
			Tax:      item.Tax.StringFixed(2),
			Total:    itemTotal(item).StringFixed(2),
		})
	}

	data, err := s.renderer.Render(doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render invoice PDF: %w", err)
	}

	filename := fmt.Sprintf("invoice-%d.pdf", invoice.ID)
	return data, filename, nil
}

// --- Helpers ---

func toInvoiceResponse(inv model.Invoice, withItems bool) InvoiceResponse {
	res := InvoiceResponse{
		ID:          inv.ID,
		CreatedAt:   inv.CreatedAt.Format(time.RFC3339),
		TotalAmount: inv.TotalAmount.StringFixed(2),
		TotalTax:    inv.TotalTax.StringFixed(2),
	}

	if !withItems {
		return res
	}

	for _, item := range inv.Items {
		res.Items = append(res.Items, InvoiceItemResponse{
			ID:           item.ID,
			ItemName:     item.ItemName,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem.StringFixed(2),
			CategoryName: categoryDisplayName(item.Category),
			Tax:          item.Tax.StringFixed(2),
			Total:        itemTotal(item).StringFixed(2),
		})
	}

	return res
}

// categoryDisplayName resolves the nullable category reference once, at the
// presentation boundary. A missing or deleted category never errors.
func categoryDisplayName(c *model.Category) string {
	if c == nil {
		return model.UncategorizedName
	}
	return c.Name
}

func itemTotal(item model.InvoiceItem) decimal.Decimal {
	return item.PricePerItem.Mul(decimal.NewFromInt(int64(item.Quantity))).Add(item.Tax)
}
