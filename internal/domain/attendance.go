package domain

import (
	"math"
	"time"
)

// FallbackMealDuration is the degraded-mode meal window applied when a
// record's grade is missing or its schedule is malformed.
const FallbackMealDuration = 20 * time.Minute

// MealDuration resolves the meal window for a record's grade, falling back
// to FallbackMealDuration when the grade is unresolvable.
func MealDuration(grade *Grade) time.Duration {
	if grade == nil {
		return FallbackMealDuration
	}

	d, err := grade.WindowDuration()
	if err != nil {
		return FallbackMealDuration
	}

	return d
}

// CalculateStatus derives a record's status at the instant now. It is a pure
// function: the passage of time never writes anything, status only depends
// on (enteredAt, grade schedule, now).
//
//   - Registered while EnteredAt is absent, regardless of now.
//   - Eating once EnteredAt is set, while now-enteredAt < window.
//   - Finished once now-enteredAt >= window; terminal.
func CalculateStatus(record MealRecord, grade *Grade, now time.Time) MealStatus {
	if record.EnteredAt == nil {
		return StatusRegistered
	}

	if now.Sub(*record.EnteredAt) >= MealDuration(grade) {
		return StatusFinished
	}

	return StatusEating
}

// RemainingMinutes reports how many whole minutes of the meal window are
// left at the instant now, rounded up so a record is never shown as "0 min
// left" while still Eating. It returns 0 when the meal has not started;
// callers disambiguate by also checking CalculateStatus.
func RemainingMinutes(record MealRecord, grade *Grade, now time.Time) int {
	if record.EnteredAt == nil {
		return 0
	}

	remaining := MealDuration(grade) - now.Sub(*record.EnteredAt)
	if remaining <= 0 {
		return 0
	}

	return int(math.Ceil(remaining.Minutes()))
}
