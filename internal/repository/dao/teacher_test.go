package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(Tables()...))

	return gormDB
}

func sampleTeacher(email, code string) Teacher {
	return Teacher{
		Name:          "Ana Torres",
		Email:         email,
		Password:      "$2a$10$hash",
		PersonalCode:  code,
		AssignedGroup: "Quinto A",
		Role:          "teacher",
		IsActive:      true,
	}
}

func TestTeacherDAO_InsertAssignsID(t *testing.T) {
	d := NewTeacherDAO(openTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, sampleTeacher("ana@school.test", "ABC234"))
	require.NoError(t, err)
	assert.Len(t, created.ID, 36)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@school.test", found.Email)
}

func TestTeacherDAO_DuplicateEmail(t *testing.T) {
	d := NewTeacherDAO(openTestDB(t))
	ctx := context.Background()

	_, err := d.Insert(ctx, sampleTeacher("ana@school.test", "ABC234"))
	require.NoError(t, err)

	_, err = d.Insert(ctx, sampleTeacher("ana@school.test", "XYZ789"))
	require.ErrorIs(t, err, ErrTeacherEmailExists)

	var constraintErr *ConstraintError
	require.ErrorAs(t, err, &constraintErr)
	assert.Equal(t, "email", constraintErr.Field)

	// The failed insert left the store unchanged.
	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTeacherDAO_DuplicatePersonalCode(t *testing.T) {
	d := NewTeacherDAO(openTestDB(t))
	ctx := context.Background()

	_, err := d.Insert(ctx, sampleTeacher("ana@school.test", "ABC234"))
	require.NoError(t, err)

	_, err = d.Insert(ctx, sampleTeacher("luis@school.test", "ABC234"))
	assert.ErrorIs(t, err, ErrTeacherCodeExists)
}

func TestTeacherDAO_FindByEmailAndCode(t *testing.T) {
	d := NewTeacherDAO(openTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, sampleTeacher("ana@school.test", "ABC234"))
	require.NoError(t, err)

	byEmail, err := d.FindByEmail(ctx, "ana@school.test")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byCode, err := d.FindByCode(ctx, "ABC234")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	_, err = d.FindByEmail(ctx, "nadie@school.test")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeacherDAO_CodeExists(t *testing.T) {
	d := NewTeacherDAO(openTestDB(t))
	ctx := context.Background()

	exists, err := d.CodeExists(ctx, "ABC234")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = d.Insert(ctx, sampleTeacher("ana@school.test", "ABC234"))
	require.NoError(t, err)

	exists, err = d.CodeExists(ctx, "ABC234")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTeacherDAO_UpdateMissing(t *testing.T) {
	d := NewTeacherDAO(openTestDB(t))

	ghost := sampleTeacher("ghost@school.test", "GGG222")
	ghost.ID = "no-such-id"

	_, err := d.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeacherDAO_UpdateKeepsCreatedAt(t *testing.T) {
	d := NewTeacherDAO(openTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, sampleTeacher("ana@school.test", "ABC234"))
	require.NoError(t, err)

	created.Name = "Ana María Torres"
	updated, err := d.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Ana María Torres", updated.Name)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt.Unix(), found.CreatedAt.Unix())
}

func TestTeacherDAO_DeleteMissing(t *testing.T) {
	d := NewTeacherDAO(openTestDB(t))

	err := d.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
