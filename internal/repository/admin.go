package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/migrate"
)

// AdminRepository owns the store-wide administrative operations that do not
// fit a single collection.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// FactoryReset clears every collection, rewinds the schema version and
// immediately re-migrates, leaving an empty store at the current version.
func (r *AdminRepository) FactoryReset(_ context.Context) error {
	if err := migrate.Reset(r.db); err != nil {
		return fmt.Errorf("migrate.Reset -> %w", err)
	}

	if err := migrate.Open(r.db); err != nil {
		return fmt.Errorf("migrate.Open -> %w", err)
	}

	return nil
}

// SchemaVersion reports the store's current schema version.
func (r *AdminRepository) SchemaVersion(_ context.Context) (int, error) {
	version, err := migrate.Version(r.db)
	if err != nil {
		return 0, fmt.Errorf("migrate.Version -> %w", err)
	}

	return version, nil
}
