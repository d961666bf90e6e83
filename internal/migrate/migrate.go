// Package migrate brings an on-disk store created under an older logical
// schema version up to the version the running code expects, exactly once,
// before the store is handed to anything else.
package migrate

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

// CodeVersion is the schema version this build of the code expects.
//
//	v1: initial collections
//	v2: grade category rename + name-pattern reclassification
//	v3: schedule window and meal-record date backfill
const CodeVersion = 3

// MigrationError is fatal to store-open; the stored version is left
// unchanged so a retry starts from the same place.
type MigrationError struct {
	Version int
	Step    string
	Err     error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration to version %d failed at step %q: %v", e.Version, e.Step, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}

// Step is one version-gated transformation. Apply must be idempotent: a
// crash mid-migration followed by a retry visits already-migrated records
// again.
type Step struct {
	Version int
	Name    string
	Apply   func(tx *gorm.DB) error
}

// storeMeta is the single-row table carrying the store's schema version.
type storeMeta struct {
	ID            uint `gorm:"primaryKey"`
	SchemaVersion int  `gorm:"not null"`
}

func (storeMeta) TableName() string {
	return "store_meta"
}

// Open creates any missing tables and indexes, then applies every pending
// migration step in ascending version order. The store must not be used if
// Open fails.
func Open(db *gorm.DB) error {
	tables := append(dao.Tables(), &storeMeta{})
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("db.AutoMigrate -> %w", err)
	}

	meta, err := loadMeta(db)
	if err != nil {
		return fmt.Errorf("loadMeta -> %w", err)
	}

	for version := meta.SchemaVersion + 1; version <= CodeVersion; version++ {
		if err := applyVersion(db, meta, version); err != nil {
			return err
		}

		zap.L().Info("store migrated", zap.Int("schema_version", version))
	}

	return nil
}

// Version reports the store's current schema version.
func Version(db *gorm.DB) (int, error) {
	meta, err := loadMeta(db)
	if err != nil {
		return 0, err
	}

	return meta.SchemaVersion, nil
}

// Reset clears every collection and rewinds the version counter to zero in
// a single transaction, so a following Open re-migrates from scratch. This
// is the only cross-collection atomic operation.
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range dao.Tables() {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		return tx.Model(&storeMeta{}).Where("id = ?", 1).Update("schema_version", 0).Error
	})
}

func loadMeta(db *gorm.DB) (*storeMeta, error) {
	meta := &storeMeta{}

	err := db.First(meta, "id = ?", 1).Error
	if err == nil {
		return meta, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// No meta row means a store that predates versioning (or a fresh one);
	// start from zero and let the idempotent steps no-op where nothing
	// needs rewriting.
	meta.ID = 1
	meta.SchemaVersion = 0
	if err := db.Create(meta).Error; err != nil {
		return nil, err
	}

	return meta, nil
}

// applyVersion runs every step gated on version and advances the stored
// version inside the same transaction, so a failed step leaves the version
// untouched.
func applyVersion(db *gorm.DB, meta *storeMeta, version int) error {
	for _, step := range steps() {
		if step.Version != version {
			continue
		}

		err := db.Transaction(step.Apply)
		if err != nil {
			return &MigrationError{Version: version, Step: step.Name, Err: err}
		}
	}

	err := db.Model(&storeMeta{}).Where("id = ?", meta.ID).Update("schema_version", version).Error
	if err != nil {
		return &MigrationError{Version: version, Step: "advance version", Err: err}
	}
	meta.SchemaVersion = version

	return nil
}
