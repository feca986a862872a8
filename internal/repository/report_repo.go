package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategorySalesRow is one aggregated row of the sales-by-category query.
// Items whose category was deleted fold into the "Uncategorized" bucket.
type CategorySalesRow struct {
	CategoryName string          `gorm:"column:category_name"`
	Revenue      decimal.Decimal `gorm:"column:revenue"`
	ItemsSold    int             `gorm:"column:items_sold"`
}

type ReportRepository interface {
	GetSalesByCategory(ctx context.Context) ([]CategorySalesRow, error)
	GetRevenueTotals(ctx context.Context) (decimal.Decimal, int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetSalesByCategory(ctx context.Context) ([]CategorySalesRow, error) {
	query := `
		SELECT
			COALESCE(c.name, 'Uncategorized') AS category_name,
			COALESCE(SUM(ii.price_per_item * ii.quantity), 0) AS revenue,
			COALESCE(SUM(ii.quantity), 0) AS items_sold
		FROM invoice_items ii
		LEFT JOIN categories c ON c.id = ii.category_id
		GROUP BY COALESCE(c.name, 'Uncategorized')
		ORDER BY category_name
	`

	var rows []CategorySalesRow
	if err := GetDB(ctx, r.db).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query sales by category: %w", err)
	}

	return rows, nil
}

// GetRevenueTotals returns the sum of invoice totals and the invoice count
// over the whole history.
func (r *reportRepository) GetRevenueTotals(ctx context.Context) (decimal.Decimal, int64, error) {
	var row struct {
		TotalRevenue  decimal.Decimal `gorm:"column:total_revenue"`
		TotalInvoices int64           `gorm:"column:total_invoices"`
	}

	query := `
		SELECT
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COUNT(*) AS total_invoices
		FROM invoices
	`
	if err := GetDB(ctx, r.db).Raw(query).Scan(&row).Error; err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to query revenue totals: %w", err)
	}

	return row.TotalRevenue, row.TotalInvoices, nil
}
