package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type TeacherUpdateRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	AssignedGroup string `json:"assigned_group,omitempty"`
}

func (req *TeacherUpdateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

func (req *SetActiveRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.IsActive, validation.NotNil),
	)
}
