package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

func newMenuRepository(t *testing.T) *MenuEntryRepository {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(dao.Tables()...))

	return NewMenuEntryRepository(dao.NewMenuEntryDAO(gormDB))
}

func TestMenuRepository_DetailsRoundTrip(t *testing.T) {
	repo := newMenuRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.MenuEntry{
		Date:     "2026-03-02",
		MainDish: "Arroz con pollo",
		Drink:    "Limonada",
		Details: map[string]any{
			"soup":       "Sancocho",
			"vegetarian": true,
		},
	})
	require.NoError(t, err)

	found, err := repo.FindByDate(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Sancocho", found.Details["soup"])
	assert.Equal(t, true, found.Details["vegetarian"])
}

func TestMenuRepository_RejectsUnencodablePayload(t *testing.T) {
	repo := newMenuRepository(t)

	_, err := repo.Create(context.Background(), domain.MenuEntry{
		Date:     "2026-03-02",
		MainDish: "Arroz con pollo",
		Details: map[string]any{
			"callback": func() {},
		},
	})
	assert.ErrorIs(t, err, ErrNotSerializable)
}

func TestMenuRepository_DuplicateDate(t *testing.T) {
	repo := newMenuRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.MenuEntry{Date: "2026-03-02", MainDish: "Arroz con pollo"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.MenuEntry{Date: "2026-03-02", MainDish: "Lentejas"})
	assert.ErrorIs(t, err, ErrMenuDateExists)
}
