package repository

import (
	"context"

	"pos/internal/model"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	CreateItems(ctx context.Context, items []model.InvoiceItem) error
	FindByIDWithItems(ctx context.Context, id uint) (*model.Invoice, error)
	List(ctx context.Context, page, limit int) ([]model.Invoice, int64, error)
	Count(ctx context.Context) (int64, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create writes the invoice row only; Items must not be set here. The
// caller creates item rows in a second step once the invoice id exists,
// inside the same transaction.
func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Omit("Items").Create(invoice).Error
}

func (r *invoiceRepository) CreateItems(ctx context.Context, items []model.InvoiceItem) error {
	return GetDB(ctx, r.db).Create(&items).Error
}

func (r *invoiceRepository) FindByIDWithItems(ctx context.Context, id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := GetDB(ctx, r.db).Preload("Items").Preload("Items.Category").First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, page, limit int) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Invoice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at desc").Order("id desc").Offset(offset).Limit(limit).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Invoice{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
