package dao

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an operation references an id or index
	// value with no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrNotSerializable is returned when a payload contains a value the
	// store cannot durably encode. This is a programming-contract violation
	// on the caller's side, not a storage fault.
	ErrNotSerializable = errors.New("payload cannot be serialized for storage")
)

// ConstraintError reports a unique-index collision, naming the offending
// field so callers can translate it into a domain message.
type ConstraintError struct {
	Field string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("unique constraint violated on %q", e.Field)
}

// Well-known constraint collisions, pre-bound to their fields so callers can
// match with errors.Is while still extracting the field via errors.As.
var (
	ErrTeacherEmailExists = &ConstraintError{Field: "email"}
	ErrTeacherCodeExists  = &ConstraintError{Field: "personal_code"}
	ErrGradeNameExists    = &ConstraintError{Field: "name"}
	ErrMenuDateExists     = &ConstraintError{Field: "date"}
)

// constraintFields maps the unique constraint names GORM generates
// (idx_<table>_<column> for uniqueIndex tags, uni_<table>_<column> for
// unique columns) to the colliding field.
var constraintFields = map[string]string{
	"idx_teachers_email":         "email",
	"uni_teachers_email":         "email",
	"idx_teachers_personal_code": "personal_code",
	"idx_grades_name":            "name",
	"uni_grades_name":            "name",
	"idx_menu_entries_date":      "date",
	"uni_menu_entries_date":      "date",
}

// uniqueViolation reports whether err is a unique-index collision on either
// backend, and the column it names. SQLite reports
// "UNIQUE constraint failed: teachers.email"; Postgres reports the
// constraint name, e.g. "idx_teachers_personal_code".
func uniqueViolation(err error) (string, bool) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		msg := sqliteErr.Error()
		if i := strings.LastIndex(msg, "."); i >= 0 {
			return msg[i+1:], true
		}

		return "", true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if field, ok := constraintFields[pgErr.ConstraintName]; ok {
			return field, true
		}

		// Unknown constraint: strip the naming-convention prefixes so
		// multi-word columns like personal_code survive intact.
		name := strings.TrimPrefix(pgErr.ConstraintName, "idx_")
		name = strings.TrimPrefix(name, "uni_")
		if pgErr.TableName != "" {
			name = strings.TrimPrefix(name, pgErr.TableName+"_")
		}

		return name, true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	return "", false
}
