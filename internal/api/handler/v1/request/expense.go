package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"` // YYYY-MM-DD; defaults to today
}

func (req *ExpenseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Amount, validation.Required),
		validation.Field(&req.Date, validation.Date("2006-01-02")),
	)
}
