package model

// CategorySales accumulates revenue and units sold for one category name.
type CategorySales struct {
	Revenue   string `json:"revenue"`
	ItemsSold int    `json:"items_sold"`
}

// SalesReport aggregates the full invoice history for the admin dashboard.
// Recomputed from scratch on every request.
type SalesReport struct {
	TotalRevenue    string                   `json:"total_revenue"`
	TotalInvoices   int64                    `json:"total_invoices"`
	SalesByCategory map[string]CategorySales `json:"sales_by_category"`
}
