package repository

import (
	"context"
	"fmt"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

type StudentAttendanceDAO interface {
	Upsert(ctx context.Context, record dao.StudentAttendanceRecord) (dao.StudentAttendanceRecord, error)
	FindByKey(ctx context.Context, teacherID, gradeID, date string) (dao.StudentAttendanceRecord, error)
	FindByDate(ctx context.Context, date string) ([]dao.StudentAttendanceRecord, error)
}

type StudentAttendanceRepository struct {
	dao StudentAttendanceDAO
}

func NewStudentAttendanceRepository(dao StudentAttendanceDAO) *StudentAttendanceRepository {
	return &StudentAttendanceRepository{
		dao: dao,
	}
}

func (r *StudentAttendanceRepository) Save(ctx context.Context, record domain.StudentAttendanceRecord) (domain.StudentAttendanceRecord, error) {
	saved, err := r.dao.Upsert(ctx, r.domainToDAO(record))
	if err != nil {
		return domain.StudentAttendanceRecord{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *StudentAttendanceRepository) FindByKey(ctx context.Context, teacherID, gradeID, date string) (domain.StudentAttendanceRecord, error) {
	found, err := r.dao.FindByKey(ctx, teacherID, gradeID, date)
	if err != nil {
		return domain.StudentAttendanceRecord{}, fmt.Errorf("r.dao.FindByKey -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StudentAttendanceRepository) FindByDate(ctx context.Context, date string) ([]domain.StudentAttendanceRecord, error) {
	found, err := r.dao.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDate -> %w", err)
	}

	records := make([]domain.StudentAttendanceRecord, 0, len(found))
	for _, rec := range found {
		records = append(records, r.daoToDomain(rec))
	}

	return records, nil
}

func (r *StudentAttendanceRepository) daoToDomain(s dao.StudentAttendanceRecord) domain.StudentAttendanceRecord {
	return domain.StudentAttendanceRecord{
		ID:                s.ID,
		TeacherID:         s.TeacherID,
		GradeID:           s.GradeID,
		Date:              s.Date,
		StudentsPresent:   s.StudentsPresent,
		StudentsEating:    s.StudentsEating,
		StudentsNotEating: s.StudentsNotEating,
		Timestamp:         s.Timestamp,
	}
}

func (r *StudentAttendanceRepository) domainToDAO(s domain.StudentAttendanceRecord) dao.StudentAttendanceRecord {
	return dao.StudentAttendanceRecord{
		ID:                s.ID,
		TeacherID:         s.TeacherID,
		GradeID:           s.GradeID,
		Date:              s.Date,
		StudentsPresent:   s.StudentsPresent,
		StudentsEating:    s.StudentsEating,
		StudentsNotEating: s.StudentsNotEating,
		Timestamp:         s.Timestamp,
	}
}
