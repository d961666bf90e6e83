package repository

import (
	"context"
	"fmt"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

type MealRecordDAO interface {
	Insert(ctx context.Context, record dao.MealRecord) (dao.MealRecord, error)
	FindByID(ctx context.Context, id string) (dao.MealRecord, error)
	FindByTeacherGroupDate(ctx context.Context, teacherID, group, date string) (dao.MealRecord, error)
	FindByDate(ctx context.Context, date string) ([]dao.MealRecord, error)
	FindByGroupAndDate(ctx context.Context, group, date string) ([]dao.MealRecord, error)
	FindByTeacherID(ctx context.Context, teacherID string) ([]dao.MealRecord, error)
	Update(ctx context.Context, record dao.MealRecord) (dao.MealRecord, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type MealRecordRepository struct {
	dao MealRecordDAO
}

func NewMealRecordRepository(dao MealRecordDAO) *MealRecordRepository {
	return &MealRecordRepository{
		dao: dao,
	}
}

func (r *MealRecordRepository) Create(ctx context.Context, record domain.MealRecord) (domain.MealRecord, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(record))
	if err != nil {
		return domain.MealRecord{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MealRecordRepository) FindByID(ctx context.Context, id string) (domain.MealRecord, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.MealRecord{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MealRecordRepository) FindByTeacherGroupDate(ctx context.Context, teacherID, group, date string) (domain.MealRecord, error) {
	found, err := r.dao.FindByTeacherGroupDate(ctx, teacherID, group, date)
	if err != nil {
		return domain.MealRecord{}, fmt.Errorf("r.dao.FindByTeacherGroupDate -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MealRecordRepository) FindByDate(ctx context.Context, date string) ([]domain.MealRecord, error) {
	found, err := r.dao.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDate -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *MealRecordRepository) FindByGroupAndDate(ctx context.Context, group, date string) ([]domain.MealRecord, error) {
	found, err := r.dao.FindByGroupAndDate(ctx, group, date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByGroupAndDate -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *MealRecordRepository) FindByTeacherID(ctx context.Context, teacherID string) ([]domain.MealRecord, error) {
	found, err := r.dao.FindByTeacherID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTeacherID -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *MealRecordRepository) Update(ctx context.Context, record domain.MealRecord) (domain.MealRecord, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(record))
	if err != nil {
		return domain.MealRecord{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *MealRecordRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *MealRecordRepository) daoToDomainAll(records []dao.MealRecord) []domain.MealRecord {
	out := make([]domain.MealRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, r.daoToDomain(rec))
	}

	return out
}

func (r *MealRecordRepository) daoToDomain(m dao.MealRecord) domain.MealRecord {
	return domain.MealRecord{
		ID:           m.ID,
		TeacherID:    m.TeacherID,
		TeacherName:  m.TeacherName,
		TeacherCode:  m.TeacherCode,
		Group:        m.Group,
		RegisteredAt: m.RegisteredAt,
		EnteredAt:    m.EnteredAt,
		Status:       domain.MealStatus(m.Status),
		Date:         m.Date,
	}
}

func (r *MealRecordRepository) domainToDAO(m domain.MealRecord) dao.MealRecord {
	return dao.MealRecord{
		ID:           m.ID,
		TeacherID:    m.TeacherID,
		TeacherName:  m.TeacherName,
		TeacherCode:  m.TeacherCode,
		Group:        m.Group,
		RegisteredAt: m.RegisteredAt,
		EnteredAt:    m.EnteredAt,
		Status:       string(m.Status),
		Date:         m.Date,
	}
}
