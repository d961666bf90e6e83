package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository"
)

var ErrMealAlreadyStarted = errors.New("meal already started for this record")

// DuplicateRegistrationError rejects a second check-in for the same
// (teacher, group, day). It carries the existing record so the caller can
// explain when and where the teacher already checked in.
type DuplicateRegistrationError struct {
	Existing domain.MealRecord
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("teacher %s already registered for group %s on %s",
		e.Existing.TeacherCode, e.Existing.Group, e.Existing.Date)
}

type MealRecordRepository interface {
	Create(ctx context.Context, record domain.MealRecord) (domain.MealRecord, error)
	FindByID(ctx context.Context, id string) (domain.MealRecord, error)
	FindByTeacherGroupDate(ctx context.Context, teacherID, group, date string) (domain.MealRecord, error)
	FindByGroupAndDate(ctx context.Context, group, date string) ([]domain.MealRecord, error)
	FindByTeacherID(ctx context.Context, teacherID string) ([]domain.MealRecord, error)
	Update(ctx context.Context, record domain.MealRecord) (domain.MealRecord, error)
}

type GradeFinder interface {
	FindByName(ctx context.Context, name string) (domain.Grade, error)
	FindAll(ctx context.Context) ([]domain.Grade, error)
}

// MealView is a record plus its read-time projection: status and remaining
// minutes recomputed from stored timestamps, never trusted from the cache.
type MealView struct {
	domain.MealRecord
	RemainingMinutes int `json:"remaining_minutes"`
}

// MealService is the conflict guard and the only write path for meal
// records; direct store writes must not bypass it.
type MealService struct {
	repo   MealRecordRepository
	grades GradeFinder
	bus    *events.Bus
}

func NewMealService(repo MealRecordRepository, grades GradeFinder, bus *events.Bus) *MealService {
	return &MealService{
		repo:   repo,
		grades: grades,
		bus:    bus,
	}
}

// CheckIn creates the day's meal record for (teacher, group). A teacher may
// hold records for several groups on the same day (covering another group),
// but never two for the same group.
func (s *MealService) CheckIn(ctx context.Context, teacher domain.Teacher, group string, now time.Time) (domain.MealRecord, error) {
	date := now.Local().Format(domain.DateLayout)

	existing, err := s.repo.FindByTeacherGroupDate(ctx, teacher.ID, group, date)
	if err == nil {
		return domain.MealRecord{}, &DuplicateRegistrationError{Existing: existing}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return domain.MealRecord{}, fmt.Errorf("s.repo.FindByTeacherGroupDate -> %w", err)
	}

	record := domain.MealRecord{
		TeacherID:    teacher.ID,
		TeacherName:  teacher.Name,
		TeacherCode:  teacher.PersonalCode,
		Group:        group,
		RegisteredAt: now,
		Status:       domain.StatusRegistered,
		Date:         date,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return domain.MealRecord{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "meal_records", Op: events.OpCreated, ID: created.ID})

	return created, nil
}

// StartMeal writes enteredAt exactly once. The record then progresses to
// Finished purely by the passage of time; no further writes occur to it.
func (s *MealService) StartMeal(ctx context.Context, recordID string, now time.Time) (domain.MealRecord, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		return domain.MealRecord{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if record.EnteredAt != nil {
		return domain.MealRecord{}, ErrMealAlreadyStarted
	}

	// enteredAt may never precede registeredAt.
	enteredAt := now
	if enteredAt.Before(record.RegisteredAt) {
		enteredAt = record.RegisteredAt
	}

	record.EnteredAt = &enteredAt
	record.Status = domain.StatusEating

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return domain.MealRecord{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "meal_records", Op: events.OpUpdated, ID: updated.ID})

	return updated, nil
}

// TodayByGroup returns the group's records for now's calendar day with
// status and remaining minutes recomputed.
func (s *MealService) TodayByGroup(ctx context.Context, group string, now time.Time) ([]MealView, error) {
	date := now.Local().Format(domain.DateLayout)

	records, err := s.repo.FindByGroupAndDate(ctx, group, date)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByGroupAndDate -> %w", err)
	}

	return s.project(ctx, records, now)
}

// HistoryByTeacher returns a teacher's records, newest first, statuses
// recomputed.
func (s *MealService) HistoryByTeacher(ctx context.Context, teacherID string, now time.Time) ([]MealView, error) {
	records, err := s.repo.FindByTeacherID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTeacherID -> %w", err)
	}

	return s.project(ctx, records, now)
}

func (s *MealService) GetRecord(ctx context.Context, recordID string, now time.Time) (MealView, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		return MealView{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	views, err := s.project(ctx, []domain.MealRecord{record}, now)
	if err != nil {
		return MealView{}, err
	}

	return views[0], nil
}

func (s *MealService) project(ctx context.Context, records []domain.MealRecord, now time.Time) ([]MealView, error) {
	gradesByName, err := s.gradesByName(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]MealView, 0, len(records))
	for _, record := range records {
		grade := gradesByName[record.Group]

		record.Status = domain.CalculateStatus(record, grade, now)
		views = append(views, MealView{
			MealRecord:       record,
			RemainingMinutes: domain.RemainingMinutes(record, grade, now),
		})
	}

	return views, nil
}

func (s *MealService) gradesByName(ctx context.Context) (map[string]*domain.Grade, error) {
	grades, err := s.grades.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.grades.FindAll -> %w", err)
	}

	byName := make(map[string]*domain.Grade, len(grades))
	for i := range grades {
		byName[grades[i].Name] = &grades[i]
	}

	return byName, nil
}
