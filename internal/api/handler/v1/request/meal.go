package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CheckInRequest struct {
	Group string `json:"group"`
}

func (req *CheckInRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Group, validation.Required),
	)
}

type HeadCountRequest struct {
	GradeID           string `json:"grade_id"`
	Date              string `json:"date,omitempty"`
	StudentsPresent   int    `json:"students_present"`
	StudentsEating    int    `json:"students_eating"`
	StudentsNotEating int    `json:"students_not_eating"`
}

func (req *HeadCountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GradeID, validation.Required),
		validation.Field(&req.StudentsPresent, validation.Min(0)),
		validation.Field(&req.StudentsEating, validation.Min(0)),
		validation.Field(&req.StudentsNotEating, validation.Min(0)),
		validation.Field(&req.Date, validation.Date("2006-01-02")),
	)
}
