package dao

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolation_PostgresConstraintNames(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		table      string
		field      string
	}{
		{"teacher email index", "idx_teachers_email", "teachers", "email"},
		{"teacher code index", "idx_teachers_personal_code", "teachers", "personal_code"},
		{"teacher code index without table detail", "idx_teachers_personal_code", "", "personal_code"},
		{"grade name index", "idx_grades_name", "grades", "name"},
		{"menu date index", "idx_menu_entries_date", "menu_entries", "date"},
		{"unique column constraint", "uni_teachers_email", "teachers", "email"},
		{"unknown multi-word constraint", "idx_meal_records_started_at", "meal_records", "started_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: tt.constraint,
				TableName:      tt.table,
			}

			field, ok := uniqueViolation(err)
			assert.True(t, ok)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestUniqueViolation_OtherErrors(t *testing.T) {
	_, ok := uniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	assert.False(t, ok)

	_, ok = uniqueViolation(errors.New("connection reset"))
	assert.False(t, ok)

	_, ok = uniqueViolation(gorm.ErrDuplicatedKey)
	assert.True(t, ok)
}
