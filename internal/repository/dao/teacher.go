package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Teacher struct {
	ID string `gorm:"primaryKey;size:36"`

	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	PersonalCode string `gorm:"uniqueIndex;not null;size:6"`

	AssignedGroup string
	Role          string `gorm:"not null;default:teacher"`
	IsActive      bool   `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TeacherDAO struct {
	db *gorm.DB
}

func NewTeacherDAO(db *gorm.DB) *TeacherDAO {
	return &TeacherDAO{
		db: db,
	}
}

func (d *TeacherDAO) Insert(ctx context.Context, teacher Teacher) (Teacher, error) {
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&teacher)
	if result.Error != nil {
		if field, ok := uniqueViolation(result.Error); ok {
			switch field {
			case "email":
				return Teacher{}, ErrTeacherEmailExists
			case "personal_code":
				return Teacher{}, ErrTeacherCodeExists
			}

			return Teacher{}, &ConstraintError{Field: field}
		}

		return Teacher{}, result.Error
	}

	return teacher, nil
}

func (d *TeacherDAO) FindByID(ctx context.Context, id string) (Teacher, error) {
	var teacher Teacher

	result := d.db.WithContext(ctx).First(&teacher, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Teacher{}, ErrNotFound
		}

		return Teacher{}, result.Error
	}

	return teacher, nil
}

func (d *TeacherDAO) FindByEmail(ctx context.Context, email string) (Teacher, error) {
	var teacher Teacher

	result := d.db.WithContext(ctx).First(&teacher, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Teacher{}, ErrNotFound
		}

		return Teacher{}, result.Error
	}

	return teacher, nil
}

func (d *TeacherDAO) FindByCode(ctx context.Context, code string) (Teacher, error) {
	var teacher Teacher

	result := d.db.WithContext(ctx).First(&teacher, "personal_code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Teacher{}, ErrNotFound
		}

		return Teacher{}, result.Error
	}

	return teacher, nil
}

func (d *TeacherDAO) FindAll(ctx context.Context) ([]Teacher, error) {
	var teachers []Teacher

	result := d.db.WithContext(ctx).Order("name").Find(&teachers)
	if result.Error != nil {
		return nil, result.Error
	}

	return teachers, nil
}

// CodeExists checks the live personal-code index, so every generation
// attempt sees the latest committed state.
func (d *TeacherDAO) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Teacher{}).Where("personal_code = ?", code).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Update rewrites an existing teacher in one transaction; updating an id
// that does not exist fails with ErrNotFound instead of inserting.
func (d *TeacherDAO) Update(ctx context.Context, teacher Teacher) (Teacher, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Teacher
		if err := tx.First(&existing, "id = ?", teacher.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}

			return err
		}

		teacher.CreatedAt = existing.CreatedAt

		return tx.Save(&teacher).Error
	})
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			switch field {
			case "email":
				return Teacher{}, ErrTeacherEmailExists
			case "personal_code":
				return Teacher{}, ErrTeacherCodeExists
			}

			return Teacher{}, &ConstraintError{Field: field}
		}

		return Teacher{}, err
	}

	return teacher, nil
}

func (d *TeacherDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Teacher{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
