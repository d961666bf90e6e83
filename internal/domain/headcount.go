package domain

import "time"

// StudentAttendanceRecord is a grade-level head-count snapshot for one day,
// keyed by (teacher, grade, date). Saving the same key again updates the
// existing snapshot instead of inserting a second one.
type StudentAttendanceRecord struct {
	ID                string    `json:"id"`
	TeacherID         string    `json:"teacher_id"`
	GradeID           string    `json:"grade_id"`
	Date              string    `json:"date"`
	StudentsPresent   int       `json:"students_present"`
	StudentsEating    int       `json:"students_eating"`
	StudentsNotEating int       `json:"students_not_eating"`
	Timestamp         time.Time `json:"timestamp"`
}
