package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/migrate"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

func TestFactoryReset_WipesEverythingAndRemigrates(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, migrate.Open(db))

	bus := events.NewBus()
	teacherRepo := repository.NewTeacherRepository(dao.NewTeacherDAO(db))
	mealRepo := repository.NewMealRecordRepository(dao.NewMealRecordDAO(db))
	gradeRepo := repository.NewGradeRepository(dao.NewGradeDAO(db))

	auth := NewAuthService(teacherRepo, bus)
	meals := NewMealService(mealRepo, gradeRepo, bus)
	admin := NewAdminService(repository.NewAdminRepository(db), bus)

	ctx := context.Background()

	teacher, err := auth.Signup(ctx, domain.Teacher{Name: "Ana", Email: "ana@school.test", Password: "secret123"})
	require.NoError(t, err)
	_, err = meals.CheckIn(ctx, teacher, "Quinto A", time.Now())
	require.NoError(t, err)

	resets, cancel := bus.Subscribe()
	defer cancel()

	require.NoError(t, admin.FactoryReset(ctx))

	// All collections are empty and the store is back at the current
	// version, ready for use.
	teachers, err := teacherRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, teachers)

	count, err := mealRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	version, err := admin.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migrate.CodeVersion, version)

	// Subscribers hear about the wipe.
	select {
	case event := <-resets:
		assert.Equal(t, "*", event.Collection)
		assert.Equal(t, events.OpReset, event.Op)
	case <-time.After(time.Second):
		t.Fatal("no reset event published")
	}

	// The store accepts fresh writes immediately.
	_, err = auth.Signup(ctx, domain.Teacher{Name: "Ana", Email: "ana@school.test", Password: "secret123"})
	assert.NoError(t, err)
}
