package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/pkg/teachercode"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository"
)

var (
	ErrNotFound           = repository.ErrNotFound
	ErrTeacherEmailExists = repository.ErrTeacherEmailExists
	ErrTeacherCodeExists  = repository.ErrTeacherCodeExists
	ErrCodeExhausted      = teachercode.ErrCodeExhausted
	ErrWrongPassword      = errors.New("wrong password")
	ErrTeacherInactive    = errors.New("teacher account is deactivated")
)

type AuthTeacherRepository interface {
	Create(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error)
	FindByID(ctx context.Context, id string) (domain.Teacher, error)
	FindByEmail(ctx context.Context, email string) (domain.Teacher, error)
	FindByCode(ctx context.Context, code string) (domain.Teacher, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error)
}

type AuthService struct {
	repo  AuthTeacherRepository
	codes *teachercode.Generator
	bus   *events.Bus
}

func NewAuthService(repo AuthTeacherRepository, bus *events.Bus) *AuthService {
	return &AuthService{
		repo:  repo,
		codes: teachercode.NewGenerator(repo),
		bus:   bus,
	}
}

// Signup registers a teacher, hashing the password and assigning a fresh
// personal code.
func (s *AuthService) Signup(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(teacher.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	teacher.Password = string(hash)

	code, err := s.codes.Generate(ctx)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.codes.Generate -> %w", err)
	}
	teacher.PersonalCode = code

	if teacher.Role == "" {
		teacher.Role = domain.RoleTeacher
	}
	teacher.IsActive = true

	created, err := s.repo.Create(ctx, teacher)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "teachers", Op: events.OpCreated, ID: created.ID})

	return created, nil
}

// Login authenticates by email or personal code plus password.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (domain.Teacher, error) {
	teacher, err := s.repo.FindByEmail(ctx, identifier)
	if errors.Is(err, repository.ErrNotFound) {
		teacher, err = s.repo.FindByCode(ctx, identifier)
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Teacher{}, ErrNotFound
		}
		if err != nil {
			return domain.Teacher{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
		}
	} else if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte(password)); err != nil {
		return domain.Teacher{}, ErrWrongPassword
	}

	if !teacher.IsActive {
		return domain.Teacher{}, ErrTeacherInactive
	}

	return teacher, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, teacherID, oldPassword, newPassword string) error {
	teacher, err := s.repo.FindByID(ctx, teacherID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	teacher.Password = string(hash)

	if _, err = s.repo.Update(ctx, teacher); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "teachers", Op: events.OpUpdated, ID: teacher.ID})

	return nil
}
