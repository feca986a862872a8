package service

import (
	"context"
	"fmt"

	"pos/internal/model"
	"pos/internal/repository"
)

type ReportService interface {
	GetSalesReport(ctx context.Context) (model.SalesReport, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// GetSalesReport recomputes the dashboard figures from the full invoice
// history. Fine at POS scale; O(n) per request.
func (s *reportService) GetSalesReport(ctx context.Context) (model.SalesReport, error) {
	totalRevenue, totalInvoices, err := s.reportRepo.GetRevenueTotals(ctx)
	if err != nil {
		return model.SalesReport{}, fmt.Errorf("failed to aggregate revenue totals: %w", err)
	}

	rows, err := s.reportRepo.GetSalesByCategory(ctx)
	if err != nil {
		return model.SalesReport{}, fmt.Errorf("failed to aggregate sales by category: %w", err)
	}

	salesByCategory := make(map[string]model.CategorySales, len(rows))
	for _, row := range rows {
		salesByCategory[row.CategoryName] = model.CategorySales{
			Revenue:   row.Revenue.StringFixed(2),
			ItemsSold: row.ItemsSold,
		}
	}

	return model.SalesReport{
		TotalRevenue:    totalRevenue.StringFixed(2),
		TotalInvoices:   totalInvoices,
		SalesByCategory: salesByCategory,
	}, nil
}
