package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealRecord's natural key (teacher_id, group, date) is deliberately not a
// store-level composite unique index; the service-layer conflict guard is
// the authoritative enforcement point.
type MealRecord struct {
	ID string `gorm:"primaryKey;size:36"`

	TeacherID   string `gorm:"index;not null;size:36"`
	TeacherName string `gorm:"not null"`
	TeacherCode string `gorm:"not null;size:6"`
	Group       string `gorm:"column:group_name;not null"`

	RegisteredAt time.Time `gorm:"not null"`
	EnteredAt    *time.Time

	Status string `gorm:"not null;default:registered"`
	Date   string `gorm:"index;not null;size:10"`
}

type MealRecordDAO struct {
	db *gorm.DB
}

func NewMealRecordDAO(db *gorm.DB) *MealRecordDAO {
	return &MealRecordDAO{
		db: db,
	}
}

func (d *MealRecordDAO) Insert(ctx context.Context, record MealRecord) (MealRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		if field, ok := uniqueViolation(result.Error); ok {
			return MealRecord{}, &ConstraintError{Field: field}
		}

		return MealRecord{}, result.Error
	}

	return record, nil
}

func (d *MealRecordDAO) FindByID(ctx context.Context, id string) (MealRecord, error) {
	var record MealRecord

	result := d.db.WithContext(ctx).First(&record, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return MealRecord{}, ErrNotFound
		}

		return MealRecord{}, result.Error
	}

	return record, nil
}

// FindByTeacherGroupDate looks up the conflict guard's natural key.
func (d *MealRecordDAO) FindByTeacherGroupDate(ctx context.Context, teacherID, group, date string) (MealRecord, error) {
	var record MealRecord

	result := d.db.WithContext(ctx).
		Where("teacher_id = ? AND group_name = ? AND date = ?", teacherID, group, date).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return MealRecord{}, ErrNotFound
		}

		return MealRecord{}, result.Error
	}

	return record, nil
}

func (d *MealRecordDAO) FindByDate(ctx context.Context, date string) ([]MealRecord, error) {
	var records []MealRecord

	result := d.db.WithContext(ctx).Where("date = ?", date).Order("registered_at").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *MealRecordDAO) FindByGroupAndDate(ctx context.Context, group, date string) ([]MealRecord, error) {
	var records []MealRecord

	result := d.db.WithContext(ctx).
		Where("group_name = ? AND date = ?", group, date).
		Order("registered_at").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *MealRecordDAO) FindByTeacherID(ctx context.Context, teacherID string) ([]MealRecord, error) {
	var records []MealRecord

	result := d.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("registered_at DESC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *MealRecordDAO) Update(ctx context.Context, record MealRecord) (MealRecord, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing MealRecord
		if err := tx.First(&existing, "id = ?", record.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}

			return err
		}

		return tx.Save(&record).Error
	})
	if err != nil {
		return MealRecord{}, err
	}

	return record, nil
}

func (d *MealRecordDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&MealRecord{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *MealRecordDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&MealRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
