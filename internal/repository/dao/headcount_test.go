package dao

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentAttendanceDAO_UpsertReplacesSameKey(t *testing.T) {
	d := NewStudentAttendanceDAO(openTestDB(t))
	ctx := context.Background()

	first, err := d.Upsert(ctx, StudentAttendanceRecord{
		TeacherID:         "t-1",
		GradeID:           "g-1",
		Date:              "2026-03-02",
		StudentsPresent:   30,
		StudentsEating:    25,
		StudentsNotEating: 5,
		Timestamp:         time.Now(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := d.Upsert(ctx, StudentAttendanceRecord{
		TeacherID:         "t-1",
		GradeID:           "g-1",
		Date:              "2026-03-02",
		StudentsPresent:   31,
		StudentsEating:    26,
		StudentsNotEating: 5,
		Timestamp:         time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	found, err := d.FindByKey(ctx, "t-1", "g-1", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 31, found.StudentsPresent)

	byDate, err := d.FindByDate(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, byDate, 1)
}

func TestStudentAttendanceDAO_DistinctKeysCoexist(t *testing.T) {
	d := NewStudentAttendanceDAO(openTestDB(t))
	ctx := context.Background()

	base := StudentAttendanceRecord{
		TeacherID:       "t-1",
		GradeID:         "g-1",
		Date:            "2026-03-02",
		StudentsPresent: 30,
		StudentsEating:  30,
		Timestamp:       time.Now(),
	}

	_, err := d.Upsert(ctx, base)
	require.NoError(t, err)

	other := base
	other.GradeID = "g-2"
	_, err = d.Upsert(ctx, other)
	require.NoError(t, err)

	nextDay := base
	nextDay.Date = "2026-03-03"
	_, err = d.Upsert(ctx, nextDay)
	require.NoError(t, err)

	byDate, err := d.FindByDate(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)
}

func TestStudentAttendanceDAO_FindByKeyMissing(t *testing.T) {
	d := NewStudentAttendanceDAO(openTestDB(t))

	_, err := d.FindByKey(context.Background(), "t-9", "g-9", "2026-03-02")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Two writers racing on the same key both take the insert path; the loser's
// index violation must be recognized so Upsert can converge on the winner's
// row instead of surfacing a backend error.
func TestStudentAttendanceDAO_InsertCollisionConvergesOnExistingRow(t *testing.T) {
	db := openTestDB(t)
	d := NewStudentAttendanceDAO(db)
	ctx := context.Background()

	winner, err := d.Upsert(ctx, StudentAttendanceRecord{
		TeacherID:         "t-1",
		GradeID:           "g-1",
		Date:              "2026-03-02",
		StudentsPresent:   30,
		StudentsEating:    25,
		StudentsNotEating: 5,
		Timestamp:         time.Now(),
	})
	require.NoError(t, err)

	loser := StudentAttendanceRecord{
		ID:                uuid.NewString(),
		TeacherID:         "t-1",
		GradeID:           "g-1",
		Date:              "2026-03-02",
		StudentsPresent:   30,
		StudentsEating:    24,
		StudentsNotEating: 6,
		Timestamp:         time.Now(),
	}
	err = db.Create(&loser).Error
	require.Error(t, err)

	_, ok := uniqueViolation(err)
	assert.True(t, ok)

	saved, err := d.Upsert(ctx, loser)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, saved.ID)

	byDate, err := d.FindByDate(ctx, "2026-03-02")
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, 24, byDate[0].StudentsEating)
}
