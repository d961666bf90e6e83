package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuEntry struct {
	ID string `gorm:"primaryKey;size:36"`

	Date     string `gorm:"uniqueIndex;not null;size:10"`
	MainDish string `gorm:"not null"`
	SideDish string
	Drink    string
	Dessert  string

	Details datatypes.JSON

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type MenuEntryDAO struct {
	db *gorm.DB
}

func NewMenuEntryDAO(db *gorm.DB) *MenuEntryDAO {
	return &MenuEntryDAO{
		db: db,
	}
}

func (d *MenuEntryDAO) Insert(ctx context.Context, entry MenuEntry) (MenuEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		if field, ok := uniqueViolation(result.Error); ok {
			if field == "date" {
				return MenuEntry{}, ErrMenuDateExists
			}

			return MenuEntry{}, &ConstraintError{Field: field}
		}

		return MenuEntry{}, result.Error
	}

	return entry, nil
}

func (d *MenuEntryDAO) FindByDate(ctx context.Context, date string) (MenuEntry, error) {
	var entry MenuEntry

	result := d.db.WithContext(ctx).First(&entry, "date = ?", date)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return MenuEntry{}, ErrNotFound
		}

		return MenuEntry{}, result.Error
	}

	return entry, nil
}

func (d *MenuEntryDAO) FindAll(ctx context.Context) ([]MenuEntry, error) {
	var entries []MenuEntry

	result := d.db.WithContext(ctx).Order("date DESC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (d *MenuEntryDAO) Update(ctx context.Context, entry MenuEntry) (MenuEntry, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing MenuEntry
		if err := tx.First(&existing, "id = ?", entry.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}

			return err
		}

		entry.CreatedAt = existing.CreatedAt

		return tx.Save(&entry).Error
	})
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			if field == "date" {
				return MenuEntry{}, ErrMenuDateExists
			}

			return MenuEntry{}, &ConstraintError{Field: field}
		}

		return MenuEntry{}, err
	}

	return entry, nil
}

func (d *MenuEntryDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&MenuEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
