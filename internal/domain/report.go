package domain

// SalesSummary aggregates orders over an optional inclusive date range.
type SalesSummary struct {
	TotalOrders int64   `json:"total_orders"`
	TotalSales  float64 `json:"total_sales"`
}

// TopProduct is one row of the top-sellers report, ordered by total
// quantity sold.
type TopProduct struct {
	Name         string  `json:"name"`
	TotalSold    int64   `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}
