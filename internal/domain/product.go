package domain

import "time"

type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LowStockProduct is the trimmed product view used by the low-stock
// report.
type LowStockProduct struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
}
