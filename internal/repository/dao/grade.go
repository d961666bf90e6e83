package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Grade struct {
	ID string `gorm:"primaryKey;size:36"`

	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	Category    string `gorm:"not null"`

	ScheduleStart string `gorm:"size:5"`
	ScheduleEnd   string `gorm:"size:5"`

	IsActive bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GradeDAO struct {
	db *gorm.DB
}

func NewGradeDAO(db *gorm.DB) *GradeDAO {
	return &GradeDAO{
		db: db,
	}
}

func (d *GradeDAO) Insert(ctx context.Context, grade Grade) (Grade, error) {
	if grade.ID == "" {
		grade.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&grade)
	if result.Error != nil {
		if field, ok := uniqueViolation(result.Error); ok {
			if field == "name" {
				return Grade{}, ErrGradeNameExists
			}

			return Grade{}, &ConstraintError{Field: field}
		}

		return Grade{}, result.Error
	}

	return grade, nil
}

func (d *GradeDAO) FindByID(ctx context.Context, id string) (Grade, error) {
	var grade Grade

	result := d.db.WithContext(ctx).First(&grade, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Grade{}, ErrNotFound
		}

		return Grade{}, result.Error
	}

	return grade, nil
}

func (d *GradeDAO) FindByName(ctx context.Context, name string) (Grade, error) {
	var grade Grade

	result := d.db.WithContext(ctx).First(&grade, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Grade{}, ErrNotFound
		}

		return Grade{}, result.Error
	}

	return grade, nil
}

func (d *GradeDAO) FindAll(ctx context.Context) ([]Grade, error) {
	var grades []Grade

	result := d.db.WithContext(ctx).Order("name").Find(&grades)
	if result.Error != nil {
		return nil, result.Error
	}

	return grades, nil
}

func (d *GradeDAO) Update(ctx context.Context, grade Grade) (Grade, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Grade
		if err := tx.First(&existing, "id = ?", grade.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}

			return err
		}

		grade.CreatedAt = existing.CreatedAt

		return tx.Save(&grade).Error
	})
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			if field == "name" {
				return Grade{}, ErrGradeNameExists
			}

			return Grade{}, &ConstraintError{Field: field}
		}

		return Grade{}, err
	}

	return grade, nil
}

func (d *GradeDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Grade{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
