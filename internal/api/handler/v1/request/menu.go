package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type MenuRequest struct {
	Date     string         `json:"date"`
	MainDish string         `json:"main_dish"`
	SideDish string         `json:"side_dish,omitempty"`
	Drink    string         `json:"drink,omitempty"`
	Dessert  string         `json:"dessert,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
}

func (req *MenuRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.MainDish, validation.Required),
	)
}
