package domain

import (
	"errors"
	"time"
)

// Grade categories, one per school cycle.
const (
	CategoryPreescolar = "preescolar"
	CategoryPrimaria   = "primaria"
	CategorySecundaria = "secundaria"
	CategoryMedia      = "media"
	CategoryTecnica    = "modalidad_tecnica"
)

var ErrInvalidScheduleWindow = errors.New("schedule end must be after schedule start")

// Grade is a named attendance group with its scheduled meal window.
// ScheduleStart/ScheduleEnd are wall-clock "HH:MM" values, minute resolution.
type Grade struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	ScheduleStart string    `json:"schedule_start"`
	ScheduleEnd   string    `json:"schedule_end"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryPreescolar, CategoryPrimaria, CategorySecundaria, CategoryMedia, CategoryTecnica:
		return true
	}

	return false
}

const clockLayout = "15:04"

// WindowDuration computes the meal window length from the schedule fields.
// It returns ErrInvalidScheduleWindow when the window is malformed or would
// be negative.
func (g Grade) WindowDuration() (time.Duration, error) {
	start, err := time.Parse(clockLayout, g.ScheduleStart)
	if err != nil {
		return 0, ErrInvalidScheduleWindow
	}

	end, err := time.Parse(clockLayout, g.ScheduleEnd)
	if err != nil {
		return 0, ErrInvalidScheduleWindow
	}

	d := end.Sub(start)
	if d < 0 {
		return 0, ErrInvalidScheduleWindow
	}

	return d, nil
}
