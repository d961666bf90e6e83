package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/config"
)

// OpenSQLite opens the embedded single-file store. This is the default
// backend: one store per installation, no external server.
func OpenSQLite(conf *config.SQLiteConfig) (*gorm.DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(conf.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	// SQLite allows a single writer; serializing the pool keeps
	// interleaved callers from tripping over database-is-locked errors.
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("gormDB.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return gormDB, nil
}

// OpenPostgres opens the swappable remote variant behind the same contract.
func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v",
		conf.Host, conf.User, conf.Password, conf.DB, conf.Port,
	)

	return OpenPostgresWithURL(dsn)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return gormDB, nil
}
