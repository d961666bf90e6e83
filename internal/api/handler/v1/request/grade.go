package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type GradeRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category"`
	ScheduleStart string `json:"schedule_start"`
	ScheduleEnd   string `json:"schedule_end"`
}

func (req *GradeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Category, validation.Required,
			validation.In("preescolar", "primaria", "secundaria", "media", "modalidad_tecnica")),
		validation.Field(&req.ScheduleStart, validation.Required, validation.Match(clockPattern)),
		validation.Field(&req.ScheduleEnd, validation.Required, validation.Match(clockPattern)),
	)
}
