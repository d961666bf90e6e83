package migrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return gormDB
}

func TestOpen_FreshStore(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Open(db))

	version, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, CodeVersion, version)
}

func TestOpen_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Open(db))
	require.NoError(t, Open(db))

	version, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, CodeVersion, version)
}

func TestOpen_MigratesLegacyStore(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Open(db))

	// Plant records the way a version-1 store would have written them,
	// then rewind the version counter so Open replays v2 and v3.
	legacyGrade := dao.Grade{
		ID:       "g-legacy",
		Name:     "Décimo B",
		Category: "especiales",
		IsActive: true,
	}
	require.NoError(t, db.Create(&legacyGrade).Error)

	registered := time.Date(2026, 2, 10, 11, 45, 0, 0, time.Local)
	legacyMeal := dao.MealRecord{
		ID:           "m-legacy",
		TeacherID:    "t-1",
		Group:        "Décimo B",
		RegisteredAt: registered,
		Status:       string(domain.StatusRegistered),
	}
	require.NoError(t, db.Create(&legacyMeal).Error)

	require.NoError(t, db.Exec("UPDATE store_meta SET schema_version = 1 WHERE id = 1").Error)

	require.NoError(t, Open(db))

	var grade dao.Grade
	require.NoError(t, db.First(&grade, "id = ?", "g-legacy").Error)
	assert.Equal(t, domain.CategoryTecnica, grade.Category)
	assert.Equal(t, defaultScheduleStart, grade.ScheduleStart)
	assert.Equal(t, defaultScheduleEnd, grade.ScheduleEnd)

	var meal dao.MealRecord
	require.NoError(t, db.First(&meal, "id = ?", "m-legacy").Error)
	assert.Equal(t, "2026-02-10", meal.Date)

	version, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, CodeVersion, version)
}

func TestOpen_PreservesModernRecords(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Open(db))

	grade := dao.Grade{
		ID:            "g-modern",
		Name:          "Quinto A",
		Category:      domain.CategoryPrimaria,
		ScheduleStart: "11:30",
		ScheduleEnd:   "12:00",
		IsActive:      true,
	}
	require.NoError(t, db.Create(&grade).Error)

	require.NoError(t, db.Exec("UPDATE store_meta SET schema_version = 1 WHERE id = 1").Error)
	require.NoError(t, Open(db))

	var got dao.Grade
	require.NoError(t, db.First(&got, "id = ?", "g-modern").Error)
	assert.Equal(t, domain.CategoryPrimaria, got.Category)
	assert.Equal(t, "11:30", got.ScheduleStart)
	assert.Equal(t, "12:00", got.ScheduleEnd)
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		category string
		name     string
		want     string
	}{
		{"especiales", "Taller", domain.CategoryTecnica},
		{"transicion", "Jardín", domain.CategoryPreescolar},
		{"bachillerato", "Octavo", domain.CategorySecundaria},
		{domain.CategoryMedia, "Décimo", domain.CategoryMedia},
		{"", "Jardín A", domain.CategoryPreescolar},
		{"", "Técnica industrial", domain.CategoryTecnica},
		{"", "Décimo B", domain.CategoryMedia},
		{"", "Grado 7", domain.CategorySecundaria},
		{"", "Tercero C", domain.CategoryPrimaria},
		{"", "Sala cuna", domain.CategoryPrimaria},
	}

	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyCategory(tt.category, tt.name))
		})
	}
}

func TestReset_RewindsAndClears(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Open(db))

	teacher := dao.Teacher{
		ID:           "t-1",
		Name:         "Ana",
		Email:        "ana@school.test",
		Password:     "x",
		PersonalCode: "ABC234",
		Role:         "teacher",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&teacher).Error)

	require.NoError(t, Reset(db))

	version, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	var count int64
	require.NoError(t, db.Model(&dao.Teacher{}).Count(&count).Error)
	assert.Zero(t, count)

	// A reset store reopens and re-migrates cleanly.
	require.NoError(t, Open(db))
	version, err = Version(db)
	require.NoError(t, err)
	assert.Equal(t, CodeVersion, version)
}
