package repository

import (
	"context"
	"fmt"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

var ErrGradeNameExists = dao.ErrGradeNameExists

type GradeDAO interface {
	Insert(ctx context.Context, grade dao.Grade) (dao.Grade, error)
	FindByID(ctx context.Context, id string) (dao.Grade, error)
	FindByName(ctx context.Context, name string) (dao.Grade, error)
	FindAll(ctx context.Context) ([]dao.Grade, error)
	Update(ctx context.Context, grade dao.Grade) (dao.Grade, error)
	Delete(ctx context.Context, id string) error
}

type GradeRepository struct {
	dao GradeDAO
}

func NewGradeRepository(dao GradeDAO) *GradeRepository {
	return &GradeRepository{
		dao: dao,
	}
}

func (r *GradeRepository) Create(ctx context.Context, grade domain.Grade) (domain.Grade, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(grade))
	if err != nil {
		return domain.Grade{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GradeRepository) FindByID(ctx context.Context, id string) (domain.Grade, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Grade{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GradeRepository) FindByName(ctx context.Context, name string) (domain.Grade, error) {
	found, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.Grade{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GradeRepository) FindAll(ctx context.Context) ([]domain.Grade, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	grades := make([]domain.Grade, 0, len(found))
	for _, g := range found {
		grades = append(grades, r.daoToDomain(g))
	}

	return grades, nil
}

func (r *GradeRepository) Update(ctx context.Context, grade domain.Grade) (domain.Grade, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(grade))
	if err != nil {
		return domain.Grade{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *GradeRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *GradeRepository) daoToDomain(g dao.Grade) domain.Grade {
	return domain.Grade{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		Category:      g.Category,
		ScheduleStart: g.ScheduleStart,
		ScheduleEnd:   g.ScheduleEnd,
		IsActive:      g.IsActive,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func (r *GradeRepository) domainToDAO(g domain.Grade) dao.Grade {
	return dao.Grade{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		Category:      g.Category,
		ScheduleStart: g.ScheduleStart,
		ScheduleEnd:   g.ScheduleEnd,
		IsActive:      g.IsActive,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}
