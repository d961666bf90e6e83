package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository"
)

var (
	ErrGradeNameExists       = repository.ErrGradeNameExists
	ErrInvalidScheduleWindow = domain.ErrInvalidScheduleWindow
	ErrInvalidCategory       = errors.New("unknown grade category")
)

type GradeRepository interface {
	Create(ctx context.Context, grade domain.Grade) (domain.Grade, error)
	FindByID(ctx context.Context, id string) (domain.Grade, error)
	FindByName(ctx context.Context, name string) (domain.Grade, error)
	FindAll(ctx context.Context) ([]domain.Grade, error)
	Update(ctx context.Context, grade domain.Grade) (domain.Grade, error)
	Delete(ctx context.Context, id string) error
}

type GradeService struct {
	repo GradeRepository
	bus  *events.Bus
}

func NewGradeService(repo GradeRepository, bus *events.Bus) *GradeService {
	return &GradeService{
		repo: repo,
		bus:  bus,
	}
}

func (s *GradeService) CreateGrade(ctx context.Context, grade domain.Grade) (domain.Grade, error) {
	if err := validateGrade(grade); err != nil {
		return domain.Grade{}, err
	}

	grade.IsActive = true

	created, err := s.repo.Create(ctx, grade)
	if err != nil {
		return domain.Grade{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "grades", Op: events.OpCreated, ID: created.ID})

	return created, nil
}

func (s *GradeService) GetGrade(ctx context.Context, id string) (domain.Grade, error) {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Grade{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return grade, nil
}

func (s *GradeService) GetGradeByName(ctx context.Context, name string) (domain.Grade, error) {
	grade, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return domain.Grade{}, fmt.Errorf("s.repo.FindByName -> %w", err)
	}

	return grade, nil
}

func (s *GradeService) ListGrades(ctx context.Context) ([]domain.Grade, error) {
	grades, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return grades, nil
}

func (s *GradeService) UpdateGrade(ctx context.Context, grade domain.Grade) (domain.Grade, error) {
	if err := validateGrade(grade); err != nil {
		return domain.Grade{}, err
	}

	updated, err := s.repo.Update(ctx, grade)
	if err != nil {
		return domain.Grade{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "grades", Op: events.OpUpdated, ID: updated.ID})

	return updated, nil
}

func (s *GradeService) DeleteGrade(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "grades", Op: events.OpDeleted, ID: id})

	return nil
}

func validateGrade(grade domain.Grade) error {
	if !domain.ValidCategory(grade.Category) {
		return ErrInvalidCategory
	}

	d, err := grade.WindowDuration()
	if err != nil {
		return err
	}
	if d <= 0 {
		return ErrInvalidScheduleWindow
	}

	return nil
}
