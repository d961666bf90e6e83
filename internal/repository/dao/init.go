package dao

// Tables enumerates every collection model, in the order they are created.
// New collections introduced by a schema version bump only need to be added
// here; the migrator creates missing tables and indexes unconditionally at
// open time.
func Tables() []any {
	return []any{
		&Teacher{},
		&Grade{},
		&MealRecord{},
		&StudentAttendanceRecord{},
		&MenuEntry{},
	}
}
