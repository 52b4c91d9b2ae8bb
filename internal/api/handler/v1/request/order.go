package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type OrderItemRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (req OrderItemRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.ProductID, validation.Required),
		validation.Field(&req.Quantity, validation.Required),
	)
}

type CreateOrderRequest struct {
	CustomerID      *uint   `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerAddress string  `json:"customer_address"`
	TotalAmount     float64 `json:"total_amount"`
	Discount        float64 `json:"discount"`
	PaymentMethod   string  `json:"payment_method"`
	Notes           string  `json:"notes"`

	Items []OrderItemRequest `json:"items"`
}

func (req *CreateOrderRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.TotalAmount, validation.Required),
	); err != nil {
		return err
	}

	for _, item := range req.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Any non-empty string is a valid status; there is no transition
// validation.
func (req *UpdateOrderStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required),
	)
}
