package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

func newMenuService(t *testing.T) *MenuService {
	t.Helper()

	db := openTestDB(t)
	repo := repository.NewMenuEntryRepository(dao.NewMenuEntryDAO(db))

	return NewMenuService(repo, events.NewBus())
}

func TestSaveMenu_UpsertsByDate(t *testing.T) {
	svc := newMenuService(t)
	ctx := context.Background()

	first, err := svc.SaveMenu(ctx, domain.MenuEntry{
		Date:     "2026-03-02",
		MainDish: "Arroz con pollo",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Saving the same date replaces the entry instead of duplicating it.
	second, err := svc.SaveMenu(ctx, domain.MenuEntry{
		Date:     "2026-03-02",
		MainDish: "Lentejas con arroz",
		Dessert:  "Gelatina",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	found, err := svc.GetMenuByDate(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "Lentejas con arroz", found.MainDish)

	all, err := svc.ListMenus(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetMenuByDate_Missing(t *testing.T) {
	svc := newMenuService(t)

	_, err := svc.GetMenuByDate(context.Background(), "2026-03-02")
	assert.ErrorIs(t, err, ErrNotFound)
}
