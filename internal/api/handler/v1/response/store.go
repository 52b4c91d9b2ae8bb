package response

import "giftstore-backend/internal/domain"

// Success envelopes. Every payload carries "success": true plus the
// resource key the storefront expects.

type OK struct {
	Success bool `json:"success"`
}

type ProductList struct {
	Success  bool             `json:"success"`
	Products []domain.Product `json:"products"`
}

type ProductDetails struct {
	Success bool           `json:"success"`
	Product domain.Product `json:"product"`
}

type ProductCreated struct {
	Success   bool `json:"success"`
	ProductID uint `json:"product_id"`
}

type CategoryList struct {
	Success    bool              `json:"success"`
	Categories []domain.Category `json:"categories"`
}

type CategoryCreated struct {
	Success    bool `json:"success"`
	CategoryID uint `json:"category_id"`
}

type CustomerList struct {
	Success   bool              `json:"success"`
	Customers []domain.Customer `json:"customers"`
}

type CustomerDetails struct {
	Success  bool            `json:"success"`
	Customer domain.Customer `json:"customer"`
}

type CustomerCreated struct {
	Success    bool `json:"success"`
	CustomerID uint `json:"customer_id"`
}

type OrderList struct {
	Success bool                  `json:"success"`
	Orders  []domain.OrderSummary `json:"orders"`
}

type OrderCreated struct {
	Success bool `json:"success"`
	OrderID uint `json:"order_id"`
}

type OrderDetails struct {
	Success bool                `json:"success"`
	Order   domain.OrderDetails `json:"order"`
	Items   []domain.OrderItem  `json:"items"`
}

type ExpenseList struct {
	Success  bool             `json:"success"`
	Expenses []domain.Expense `json:"expenses"`
}

type ExpenseCreated struct {
	Success   bool `json:"success"`
	ExpenseID uint `json:"expense_id"`
}

type LowStockReport struct {
	Success  bool                     `json:"success"`
	Products []domain.LowStockProduct `json:"products"`
}

type SalesSummaryReport struct {
	Success     bool    `json:"success"`
	TotalOrders int64   `json:"total_orders"`
	TotalSales  float64 `json:"total_sales"`
}

type TopProductsReport struct {
	Success  bool                `json:"success"`
	Products []domain.TopProduct `json:"products"`
}

type Auth struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
}

type UserDetails struct {
	Success bool        `json:"success"`
	User    domain.User `json:"user"`
}
