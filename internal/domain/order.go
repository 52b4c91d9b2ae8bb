package domain

import "time"

type Order struct {
	ID            uint      `json:"id"`
	CustomerID    *uint     `json:"customer_id"`
	TotalAmount   float64   `json:"total_amount"`
	Discount      float64   `json:"discount"`
	FinalAmount   float64   `json:"final_amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OrderSummary is one row of the order listing, with the customer name
// resolved.
type OrderSummary struct {
	ID            uint      `json:"id"`
	CustomerName  string    `json:"customer_name"`
	TotalAmount   float64   `json:"total_amount"`
	Discount      float64   `json:"discount"`
	FinalAmount   float64   `json:"final_amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderDetails is the full order with customer contact fields and all
// line items.
type OrderDetails struct {
	Order
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	CustomerAddress string `json:"customer_address"`
}

type OrderItem struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}
