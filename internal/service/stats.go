package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
)

// CategoryUnknown buckets records whose group no longer resolves to a grade.
const CategoryUnknown = "sin_categoria"

type StatsMealRepository interface {
	FindByDate(ctx context.Context, date string) ([]domain.MealRecord, error)
	FindByTeacherID(ctx context.Context, teacherID string) ([]domain.MealRecord, error)
	Count(ctx context.Context) (int64, error)
}

type StatsTeacherRepository interface {
	FindAll(ctx context.Context) ([]domain.Teacher, error)
}

type SchemaVersioner interface {
	SchemaVersion(ctx context.Context) (int, error)
}

type StatsService struct {
	meals    StatsMealRepository
	grades   GradeFinder
	teachers StatsTeacherRepository
	admin    SchemaVersioner
}

func NewStatsService(meals StatsMealRepository, grades GradeFinder, teachers StatsTeacherRepository, admin SchemaVersioner) *StatsService {
	return &StatsService{
		meals:    meals,
		grades:   grades,
		teachers: teachers,
		admin:    admin,
	}
}

// DailyStats aggregates one day's records. Statuses are recomputed from
// stored timestamps at now; categories come from Grade.Category, the single
// source of truth.
func (s *StatsService) DailyStats(ctx context.Context, date string, now time.Time) (domain.DailyStats, error) {
	records, err := s.meals.FindByDate(ctx, date)
	if err != nil {
		return domain.DailyStats{}, fmt.Errorf("s.meals.FindByDate -> %w", err)
	}

	grades, err := s.grades.FindAll(ctx)
	if err != nil {
		return domain.DailyStats{}, fmt.Errorf("s.grades.FindAll -> %w", err)
	}

	gradesByName := make(map[string]*domain.Grade, len(grades))
	for i := range grades {
		gradesByName[grades[i].Name] = &grades[i]
	}

	stats := domain.DailyStats{
		Date:       date,
		Total:      len(records),
		ByStatus:   make(map[domain.MealStatus]int),
		ByCategory: make(map[string]int),
	}

	for _, record := range records {
		grade := gradesByName[record.Group]

		stats.ByStatus[domain.CalculateStatus(record, grade, now)]++

		category := CategoryUnknown
		if grade != nil {
			category = grade.Category
		}
		stats.ByCategory[category]++
	}

	return stats, nil
}

// TeacherStats computes a teacher's historical aggregates: totals by week
// and month, the current consecutive-day streak and the most frequent
// check-in hour.
func (s *StatsService) TeacherStats(ctx context.Context, teacherID string, now time.Time) (domain.TeacherStats, error) {
	records, err := s.meals.FindByTeacherID(ctx, teacherID)
	if err != nil {
		return domain.TeacherStats{}, fmt.Errorf("s.meals.FindByTeacherID -> %w", err)
	}

	stats := domain.TeacherStats{
		TeacherID:        teacherID,
		TotalRecords:     len(records),
		ByWeek:           make(map[string]int),
		ByMonth:          make(map[string]int),
		MostFrequentHour: -1,
	}

	days := make(map[string]bool, len(records))
	hours := make(map[int]int)

	for _, record := range records {
		days[record.Date] = true

		year, week := record.RegisteredAt.ISOWeek()
		stats.ByWeek[fmt.Sprintf("%d-W%02d", year, week)]++
		stats.ByMonth[record.RegisteredAt.Format("2006-01")]++

		hours[record.RegisteredAt.Local().Hour()]++
	}

	stats.DaysAttended = len(days)
	stats.CurrentStreak = streak(days, now)

	best := 0
	for hour, count := range hours {
		if count > best || (count == best && stats.MostFrequentHour >= 0 && hour < stats.MostFrequentHour) {
			best = count
			stats.MostFrequentHour = hour
		}
	}

	return stats, nil
}

// Export is the best-effort counts-only snapshot for display.
func (s *StatsService) Export(ctx context.Context, now time.Time) (domain.StatsExport, error) {
	today := now.Local().Format(domain.DateLayout)

	daily, err := s.DailyStats(ctx, today, now)
	if err != nil {
		return domain.StatsExport{}, err
	}

	teachers, err := s.teachers.FindAll(ctx)
	if err != nil {
		return domain.StatsExport{}, fmt.Errorf("s.teachers.FindAll -> %w", err)
	}

	grades, err := s.grades.FindAll(ctx)
	if err != nil {
		return domain.StatsExport{}, fmt.Errorf("s.grades.FindAll -> %w", err)
	}

	total, err := s.meals.Count(ctx)
	if err != nil {
		return domain.StatsExport{}, fmt.Errorf("s.meals.Count -> %w", err)
	}

	version, err := s.admin.SchemaVersion(ctx)
	if err != nil {
		return domain.StatsExport{}, fmt.Errorf("s.admin.SchemaVersion -> %w", err)
	}

	return domain.StatsExport{
		GeneratedAt:      now,
		SchemaVersion:    version,
		TotalTeachers:    len(teachers),
		TotalGrades:      len(grades),
		TotalMealRecords: int(total),
		Today:            daily,
	}, nil
}

// streak counts consecutive attended days ending today (or yesterday, when
// today has no record yet).
func streak(days map[string]bool, now time.Time) int {
	day := now.Local()
	if !days[day.Format(domain.DateLayout)] {
		day = day.AddDate(0, 0, -1)
	}

	count := 0
	for days[day.Format(domain.DateLayout)] {
		count++
		day = day.AddDate(0, 0, -1)
	}

	return count
}
