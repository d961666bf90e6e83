package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
)

var ErrHeadCountMismatch = errors.New("eating plus not eating must equal students present")

type StudentAttendanceRepository interface {
	Save(ctx context.Context, record domain.StudentAttendanceRecord) (domain.StudentAttendanceRecord, error)
	FindByKey(ctx context.Context, teacherID, gradeID, date string) (domain.StudentAttendanceRecord, error)
	FindByDate(ctx context.Context, date string) ([]domain.StudentAttendanceRecord, error)
}

type HeadCountService struct {
	repo StudentAttendanceRepository
	bus  *events.Bus
}

func NewHeadCountService(repo StudentAttendanceRepository, bus *events.Bus) *HeadCountService {
	return &HeadCountService{
		repo: repo,
		bus:  bus,
	}
}

// Save records the head-count snapshot for (teacher, grade, day); saving
// the same key again updates the snapshot in place.
func (s *HeadCountService) Save(ctx context.Context, record domain.StudentAttendanceRecord, now time.Time) (domain.StudentAttendanceRecord, error) {
	if record.StudentsEating < 0 || record.StudentsNotEating < 0 {
		return domain.StudentAttendanceRecord{}, ErrHeadCountMismatch
	}
	if record.StudentsEating+record.StudentsNotEating != record.StudentsPresent {
		return domain.StudentAttendanceRecord{}, ErrHeadCountMismatch
	}

	if record.Date == "" {
		record.Date = now.Local().Format(domain.DateLayout)
	}
	record.Timestamp = now

	saved, err := s.repo.Save(ctx, record)
	if err != nil {
		return domain.StudentAttendanceRecord{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "student_attendance", Op: events.OpUpdated, ID: saved.ID})

	return saved, nil
}

func (s *HeadCountService) Get(ctx context.Context, teacherID, gradeID, date string) (domain.StudentAttendanceRecord, error) {
	record, err := s.repo.FindByKey(ctx, teacherID, gradeID, date)
	if err != nil {
		return domain.StudentAttendanceRecord{}, fmt.Errorf("s.repo.FindByKey -> %w", err)
	}

	return record, nil
}

func (s *HeadCountService) ListByDate(ctx context.Context, date string) ([]domain.StudentAttendanceRecord, error) {
	records, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDate -> %w", err)
	}

	return records, nil
}
