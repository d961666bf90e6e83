package repository

import (
	"context"
	"fmt"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

var (
	ErrNotFound           = dao.ErrNotFound
	ErrNotSerializable    = dao.ErrNotSerializable
	ErrTeacherEmailExists = dao.ErrTeacherEmailExists
	ErrTeacherCodeExists  = dao.ErrTeacherCodeExists
)

type TeacherDAO interface {
	Insert(ctx context.Context, teacher dao.Teacher) (dao.Teacher, error)
	FindByID(ctx context.Context, id string) (dao.Teacher, error)
	FindByEmail(ctx context.Context, email string) (dao.Teacher, error)
	FindByCode(ctx context.Context, code string) (dao.Teacher, error)
	FindAll(ctx context.Context) ([]dao.Teacher, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, teacher dao.Teacher) (dao.Teacher, error)
	Delete(ctx context.Context, id string) error
}

type TeacherRepository struct {
	dao TeacherDAO
}

func NewTeacherRepository(dao TeacherDAO) *TeacherRepository {
	return &TeacherRepository{
		dao: dao,
	}
}

func (r *TeacherRepository) Create(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(teacher))
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TeacherRepository) FindByID(ctx context.Context, id string) (domain.Teacher, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (domain.Teacher, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeacherRepository) FindByCode(ctx context.Context, code string) (domain.Teacher, error) {
	found, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.dao.FindByCode -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeacherRepository) FindAll(ctx context.Context) ([]domain.Teacher, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	teachers := make([]domain.Teacher, 0, len(found))
	for _, t := range found {
		teachers = append(teachers, r.daoToDomain(t))
	}

	return teachers, nil
}

func (r *TeacherRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	exists, err := r.dao.CodeExists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("r.dao.CodeExists -> %w", err)
	}

	return exists, nil
}

func (r *TeacherRepository) Update(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(teacher))
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *TeacherRepository) daoToDomain(t dao.Teacher) domain.Teacher {
	return domain.Teacher{
		ID:            t.ID,
		Name:          t.Name,
		Email:         t.Email,
		Password:      t.Password,
		PersonalCode:  t.PersonalCode,
		AssignedGroup: t.AssignedGroup,
		Role:          t.Role,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TeacherRepository) domainToDAO(t domain.Teacher) dao.Teacher {
	return dao.Teacher{
		ID:            t.ID,
		Name:          t.Name,
		Email:         t.Email,
		Password:      t.Password,
		PersonalCode:  t.PersonalCode,
		AssignedGroup: t.AssignedGroup,
		Role:          t.Role,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
