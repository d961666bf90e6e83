package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refTime(t *testing.T) time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339, "2026-03-02T12:00:00Z")
	require.NoError(t, err)

	return ts
}

func TestCalculateStatus_NotStarted(t *testing.T) {
	now := refTime(t)
	record := MealRecord{RegisteredAt: now.Add(-3 * time.Hour)}

	// Without an entry time the record stays registered no matter how
	// much time passes.
	assert.Equal(t, StatusRegistered, CalculateStatus(record, nil, now))
	assert.Equal(t, StatusRegistered, CalculateStatus(record, nil, now.Add(48*time.Hour)))
	assert.Equal(t, 0, RemainingMinutes(record, nil, now))
}

func TestCalculateStatus_WindowProgression(t *testing.T) {
	now := refTime(t)
	entered := now
	record := MealRecord{RegisteredAt: now.Add(-5 * time.Minute), EnteredAt: &entered}
	grade := &Grade{Name: "5A", ScheduleStart: "12:00", ScheduleEnd: "12:20"}

	tests := []struct {
		name       string
		at         time.Time
		wantStatus MealStatus
		wantLeft   int
	}{
		{"at entry", now, StatusEating, 20},
		{"five minutes in", now.Add(5 * time.Minute), StatusEating, 15},
		{"one second before close", now.Add(20*time.Minute - time.Second), StatusEating, 1},
		{"at close", now.Add(20 * time.Minute), StatusFinished, 0},
		{"long after close", now.Add(4 * time.Hour), StatusFinished, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, CalculateStatus(record, grade, tt.at))
			assert.Equal(t, tt.wantLeft, RemainingMinutes(record, grade, tt.at))
		})
	}
}

func TestCalculateStatus_Monotonic(t *testing.T) {
	now := refTime(t)
	entered := now
	record := MealRecord{EnteredAt: &entered}
	grade := &Grade{ScheduleStart: "12:00", ScheduleEnd: "12:30"}

	rank := map[MealStatus]int{StatusRegistered: 0, StatusEating: 1, StatusFinished: 2}

	prev := rank[CalculateStatus(record, grade, now)]
	for step := time.Minute; step <= time.Hour; step += time.Minute {
		curr := rank[CalculateStatus(record, grade, now.Add(step))]
		require.GreaterOrEqual(t, curr, prev, "status regressed at +%s", step)
		prev = curr
	}
}

func TestMealDuration_Fallback(t *testing.T) {
	assert.Equal(t, FallbackMealDuration, MealDuration(nil))

	malformed := &Grade{ScheduleStart: "noon", ScheduleEnd: "12:30"}
	assert.Equal(t, FallbackMealDuration, MealDuration(malformed))

	inverted := &Grade{ScheduleStart: "13:00", ScheduleEnd: "12:30"}
	assert.Equal(t, FallbackMealDuration, MealDuration(inverted))

	grade := &Grade{ScheduleStart: "12:00", ScheduleEnd: "12:45"}
	assert.Equal(t, 45*time.Minute, MealDuration(grade))
}

func TestWindowDuration_Invalid(t *testing.T) {
	_, err := Grade{ScheduleStart: "12:61", ScheduleEnd: "13:00"}.WindowDuration()
	assert.ErrorIs(t, err, ErrInvalidScheduleWindow)

	_, err = Grade{ScheduleStart: "14:00", ScheduleEnd: "12:00"}.WindowDuration()
	assert.ErrorIs(t, err, ErrInvalidScheduleWindow)
}
