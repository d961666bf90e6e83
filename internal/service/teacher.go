package service

import (
	"context"
	"fmt"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
)

type TeacherRepository interface {
	FindByID(ctx context.Context, id string) (domain.Teacher, error)
	FindByCode(ctx context.Context, code string) (domain.Teacher, error)
	FindAll(ctx context.Context) ([]domain.Teacher, error)
	Update(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error)
}

type TeacherService struct {
	repo TeacherRepository
	bus  *events.Bus
}

func NewTeacherService(repo TeacherRepository, bus *events.Bus) *TeacherService {
	return &TeacherService{
		repo: repo,
		bus:  bus,
	}
}

func (s *TeacherService) GetTeacher(ctx context.Context, id string) (domain.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return teacher, nil
}

func (s *TeacherService) GetTeacherByCode(ctx context.Context, code string) (domain.Teacher, error) {
	teacher, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	return teacher, nil
}

func (s *TeacherService) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	teachers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return teachers, nil
}

// UpdateProfile rewrites the mutable profile fields. Password, role,
// activation and the personal code are managed by their own operations.
func (s *TeacherService) UpdateProfile(ctx context.Context, id, name, email, assignedGroup string) (domain.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	teacher.Name = name
	teacher.Email = email
	teacher.AssignedGroup = assignedGroup

	updated, err := s.repo.Update(ctx, teacher)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "teachers", Op: events.OpUpdated, ID: updated.ID})

	return updated, nil
}

// SetActive toggles the account. Teachers are never hard-deleted in normal
// operation, only deactivated.
func (s *TeacherService) SetActive(ctx context.Context, id string, active bool) (domain.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	teacher.IsActive = active

	updated, err := s.repo.Update(ctx, teacher)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "teachers", Op: events.OpUpdated, ID: updated.ID})

	return updated, nil
}
