package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// DefaultMinStock applies when a product is submitted without a
// min_stock value.
const DefaultMinStock = 5

type ProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Stock       int     `json:"stock"`
	MinStock    *int    `json:"min_stock"`
	Description string  `json:"description"`
}

func (req *ProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&req.Cost, validation.Required, validation.Min(0.0)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

// ResolvedMinStock returns the submitted min_stock or the default.
func (req *ProductRequest) ResolvedMinStock() int {
	if req.MinStock == nil {
		return DefaultMinStock
	}

	return *req.MinStock
}
