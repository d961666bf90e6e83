package domain

import "time"

type MealStatus string

const (
	StatusRegistered MealStatus = "registered"
	StatusEating     MealStatus = "eating"
	StatusFinished   MealStatus = "finished"
)

// DateLayout is the calendar-day key used across meal and head-count records.
const DateLayout = "2006-01-02"

// MealRecord is one teacher's attendance event for one group on one day.
// The stored Status is a denormalized cache for query convenience; ground
// truth is always recomputed from EnteredAt and the grade schedule.
type MealRecord struct {
	ID           string     `json:"id"`
	TeacherID    string     `json:"teacher_id"`
	TeacherName  string     `json:"teacher_name"`
	TeacherCode  string     `json:"teacher_code"`
	Group        string     `json:"group"`
	RegisteredAt time.Time  `json:"registered_at"`
	EnteredAt    *time.Time `json:"entered_at,omitempty"`
	Status       MealStatus `json:"status"`
	Date         string     `json:"date"`
}
