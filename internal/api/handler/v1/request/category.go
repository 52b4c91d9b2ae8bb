package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (req *CategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
	)
}
