package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

func newHeadCountService(t *testing.T) *HeadCountService {
	t.Helper()

	db := openTestDB(t)
	repo := repository.NewStudentAttendanceRepository(dao.NewStudentAttendanceDAO(db))

	return NewHeadCountService(repo, events.NewBus())
}

func TestHeadCountSave_EnforcesInvariant(t *testing.T) {
	svc := newHeadCountService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)

	_, err := svc.Save(ctx, domain.StudentAttendanceRecord{
		TeacherID:         "t-1",
		GradeID:           "g-1",
		StudentsPresent:   30,
		StudentsEating:    20,
		StudentsNotEating: 5,
	}, now)
	assert.ErrorIs(t, err, ErrHeadCountMismatch)

	_, err = svc.Save(ctx, domain.StudentAttendanceRecord{
		TeacherID:         "t-1",
		GradeID:           "g-1",
		StudentsPresent:   10,
		StudentsEating:    15,
		StudentsNotEating: -5,
	}, now)
	assert.ErrorIs(t, err, ErrHeadCountMismatch)
}

func TestHeadCountSave_DefaultsDateAndUpserts(t *testing.T) {
	svc := newHeadCountService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)

	saved, err := svc.Save(ctx, domain.StudentAttendanceRecord{
		TeacherID:         "t-1",
		GradeID:           "g-1",
		StudentsPresent:   30,
		StudentsEating:    25,
		StudentsNotEating: 5,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", saved.Date)
	assert.Equal(t, now, saved.Timestamp)

	// A corrected count for the same key replaces the snapshot.
	corrected, err := svc.Save(ctx, domain.StudentAttendanceRecord{
		TeacherID:         "t-1",
		GradeID:           "g-1",
		Date:              "2026-03-02",
		StudentsPresent:   31,
		StudentsEating:    26,
		StudentsNotEating: 5,
	}, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, saved.ID, corrected.ID)

	got, err := svc.Get(ctx, "t-1", "g-1", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 31, got.StudentsPresent)

	byDate, err := svc.ListByDate(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, byDate, 1)
}
