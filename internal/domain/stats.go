package domain

import "time"

// DailyStats is the dashboard projection for one calendar day. ByStatus is
// recomputed from stored timestamps at read time, never trusted from the
// cached status column.
type DailyStats struct {
	Date       string             `json:"date"`
	Total      int                `json:"total"`
	ByStatus   map[MealStatus]int `json:"by_status"`
	ByCategory map[string]int     `json:"by_category"`
}

// TeacherStats aggregates a single teacher's attendance history.
type TeacherStats struct {
	TeacherID        string         `json:"teacher_id"`
	TotalRecords     int            `json:"total_records"`
	DaysAttended     int            `json:"days_attended"`
	ByWeek           map[string]int `json:"by_week"`
	ByMonth          map[string]int `json:"by_month"`
	CurrentStreak    int            `json:"current_streak"`
	MostFrequentHour int            `json:"most_frequent_hour"`
}

// StatsExport is the best-effort counts-only export for display. It is not
// a backup format.
type StatsExport struct {
	GeneratedAt      time.Time  `json:"generated_at"`
	SchemaVersion    int        `json:"schema_version"`
	TotalTeachers    int        `json:"total_teachers"`
	TotalGrades      int        `json:"total_grades"`
	TotalMealRecords int        `json:"total_meal_records"`
	Today            DailyStats `json:"today"`
}
