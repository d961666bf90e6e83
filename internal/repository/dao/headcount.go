package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentAttendanceRecord struct {
	ID string `gorm:"primaryKey;size:36"`

	TeacherID string `gorm:"uniqueIndex:idx_headcount_key;not null;size:36"`
	GradeID   string `gorm:"uniqueIndex:idx_headcount_key;not null;size:36"`
	Date      string `gorm:"uniqueIndex:idx_headcount_key;not null;size:10"`

	StudentsPresent   int `gorm:"not null"`
	StudentsEating    int `gorm:"not null"`
	StudentsNotEating int `gorm:"not null"`

	Timestamp time.Time `gorm:"not null"`
}

type StudentAttendanceDAO struct {
	db *gorm.DB
}

func NewStudentAttendanceDAO(db *gorm.DB) *StudentAttendanceDAO {
	return &StudentAttendanceDAO{
		db: db,
	}
}

// Upsert creates the snapshot for (teacher, grade, date) or rewrites the
// existing one; a second save for the same key is an update, not an insert.
// When two writers race and both try to insert, the loser hits the
// idx_headcount_key violation and retries as an update of the winner's row.
func (d *StudentAttendanceDAO) Upsert(ctx context.Context, record StudentAttendanceRecord) (StudentAttendanceRecord, error) {
	saved, err := d.upsertOnce(ctx, record)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return d.upsertOnce(ctx, record)
		}

		return StudentAttendanceRecord{}, err
	}

	return saved, nil
}

func (d *StudentAttendanceDAO) upsertOnce(ctx context.Context, record StudentAttendanceRecord) (StudentAttendanceRecord, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing StudentAttendanceRecord
		err := tx.Where("teacher_id = ? AND grade_id = ? AND date = ?",
			record.TeacherID, record.GradeID, record.Date).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if record.ID == "" {
					record.ID = uuid.NewString()
				}

				return tx.Create(&record).Error
			}

			return err
		}

		record.ID = existing.ID

		return tx.Save(&record).Error
	})
	if err != nil {
		return StudentAttendanceRecord{}, err
	}

	return record, nil
}

func (d *StudentAttendanceDAO) FindByKey(ctx context.Context, teacherID, gradeID, date string) (StudentAttendanceRecord, error) {
	var record StudentAttendanceRecord

	result := d.db.WithContext(ctx).
		Where("teacher_id = ? AND grade_id = ? AND date = ?", teacherID, gradeID, date).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StudentAttendanceRecord{}, ErrNotFound
		}

		return StudentAttendanceRecord{}, result.Error
	}

	return record, nil
}

func (d *StudentAttendanceDAO) FindByDate(ctx context.Context, date string) ([]StudentAttendanceRecord, error) {
	var records []StudentAttendanceRecord

	result := d.db.WithContext(ctx).Where("date = ?", date).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}
