package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

func newMealService(t *testing.T) (*MealService, *GradeService) {
	t.Helper()

	db := openTestDB(t)
	bus := events.NewBus()

	meals := repository.NewMealRecordRepository(dao.NewMealRecordDAO(db))
	grades := repository.NewGradeRepository(dao.NewGradeDAO(db))

	return NewMealService(meals, grades, bus), NewGradeService(grades, bus)
}

func mealTestTeacher() domain.Teacher {
	return domain.Teacher{
		ID:           "t-1",
		Name:         "Ana Torres",
		PersonalCode: "ABC234",
	}
}

func TestCheckIn_CreatesRegisteredRecord(t *testing.T) {
	svc, _ := newMealService(t)
	now := time.Date(2026, 3, 2, 11, 50, 0, 0, time.Local)

	record, err := svc.CheckIn(context.Background(), mealTestTeacher(), "Quinto A", now)
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, domain.StatusRegistered, record.Status)
	assert.Equal(t, "2026-03-02", record.Date)
	assert.Nil(t, record.EnteredAt)
	assert.Equal(t, "ABC234", record.TeacherCode)
}

func TestCheckIn_RejectsDuplicateSameGroupSameDay(t *testing.T) {
	svc, _ := newMealService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 11, 50, 0, 0, time.Local)

	first, err := svc.CheckIn(ctx, mealTestTeacher(), "Quinto A", now)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, mealTestTeacher(), "Quinto A", now.Add(10*time.Minute))
	var dup *DuplicateRegistrationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.ID, dup.Existing.ID)

	// A different group the same day is a legitimate covering shift.
	_, err = svc.CheckIn(ctx, mealTestTeacher(), "Sexto B", now.Add(10*time.Minute))
	assert.NoError(t, err)

	// A new day resets the guard.
	_, err = svc.CheckIn(ctx, mealTestTeacher(), "Quinto A", now.AddDate(0, 0, 1))
	assert.NoError(t, err)
}

func TestStartMeal_WritesEnteredAtOnce(t *testing.T) {
	svc, _ := newMealService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 11, 50, 0, 0, time.Local)

	record, err := svc.CheckIn(ctx, mealTestTeacher(), "Quinto A", now)
	require.NoError(t, err)

	started, err := svc.StartMeal(ctx, record.ID, now.Add(5*time.Minute))
	require.NoError(t, err)
	require.NotNil(t, started.EnteredAt)
	assert.Equal(t, domain.StatusEating, started.Status)

	_, err = svc.StartMeal(ctx, record.ID, now.Add(6*time.Minute))
	assert.ErrorIs(t, err, ErrMealAlreadyStarted)

	// The stored entry time survived the rejected second start.
	view, err := svc.GetRecord(ctx, record.ID, now.Add(7*time.Minute))
	require.NoError(t, err)
	require.NotNil(t, view.EnteredAt)
	assert.Equal(t, started.EnteredAt.Unix(), view.EnteredAt.Unix())
}

func TestStartMeal_ClampsToRegisteredAt(t *testing.T) {
	svc, _ := newMealService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 11, 50, 0, 0, time.Local)

	record, err := svc.CheckIn(ctx, mealTestTeacher(), "Quinto A", now)
	require.NoError(t, err)

	// A clock skewed before registration must not produce an entry time
	// earlier than the registration itself.
	started, err := svc.StartMeal(ctx, record.ID, now.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, record.RegisteredAt.Unix(), started.EnteredAt.Unix())
}

func TestStartMeal_MissingRecord(t *testing.T) {
	svc, _ := newMealService(t)

	_, err := svc.StartMeal(context.Background(), "no-such-record", time.Now())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTodayByGroup_ProjectsStatusFromGradeWindow(t *testing.T) {
	svc, grades := newMealService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 11, 50, 0, 0, time.Local)

	_, err := grades.CreateGrade(ctx, domain.Grade{
		Name:          "Quinto A",
		Category:      domain.CategoryPrimaria,
		ScheduleStart: "11:30",
		ScheduleEnd:   "12:00",
		IsActive:      true,
	})
	require.NoError(t, err)

	record, err := svc.CheckIn(ctx, mealTestTeacher(), "Quinto A", now)
	require.NoError(t, err)
	_, err = svc.StartMeal(ctx, record.ID, now)
	require.NoError(t, err)

	// Ten minutes into a thirty-minute window.
	views, err := svc.TodayByGroup(ctx, "Quinto A", now.Add(10*time.Minute))
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, domain.StatusEating, views[0].Status)
	assert.Equal(t, 20, views[0].RemainingMinutes)

	// Past the window the same stored record reads as finished.
	views, err = svc.TodayByGroup(ctx, "Quinto A", now.Add(45*time.Minute))
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, domain.StatusFinished, views[0].Status)
	assert.Equal(t, 0, views[0].RemainingMinutes)
}

func TestHistoryByTeacher_FallbackWindowForUnknownGroup(t *testing.T) {
	svc, _ := newMealService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 11, 50, 0, 0, time.Local)

	record, err := svc.CheckIn(ctx, mealTestTeacher(), "Grupo Fantasma", now)
	require.NoError(t, err)
	_, err = svc.StartMeal(ctx, record.ID, now)
	require.NoError(t, err)

	// No grade matches the group, so the fallback window applies.
	views, err := svc.HistoryByTeacher(ctx, "t-1", now.Add(5*time.Minute))
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, domain.StatusEating, views[0].Status)
	assert.Equal(t, 15, views[0].RemainingMinutes)

	views, err = svc.HistoryByTeacher(ctx, "t-1", now.Add(domain.FallbackMealDuration))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFinished, views[0].Status)
}
