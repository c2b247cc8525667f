package database

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"eduplay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDb(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	RunMigrations(db)
	return db
}

func TestTranslateErrorNotFound(t *testing.T) {
	db := openTestDb(t)

	var institution models.Institution
	err := db.First(&institution, 42).Error
	require.Error(t, err)
	assert.Equal(t, ErrKindNotFound, TranslateError(err))
}

func TestTranslateErrorConflict(t *testing.T) {
	db := openTestDb(t)

	first := models.Institution{Name: "A", Email: "same@x.com"}
	require.NoError(t, db.Create(&first).Error)

	second := models.Institution{Name: "B", Email: "same@x.com"}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.Equal(t, ErrKindConflict, TranslateError(err))
}

func TestTranslateErrorReference(t *testing.T) {
	db := openTestDb(t)

	// Insert pointing at a missing foreign row
	lesson := models.Lesson{ModuleID: 99, Title: "Orphan", LessonType: "video"}
	err := db.Create(&lesson).Error
	require.Error(t, err)
	assert.Equal(t, ErrKindReference, TranslateError(err))

	// Delete blocked by a referencing row
	institution := models.Institution{Name: "Ref", Email: "ref@x.com"}
	require.NoError(t, db.Create(&institution).Error)
	course := models.Course{InstitutionID: institution.ID, Title: "Math"}
	require.NoError(t, db.Create(&course).Error)

	err = db.Delete(&models.Institution{}, institution.ID).Error
	require.Error(t, err)
	assert.Equal(t, ErrKindReference, TranslateError(err))
}

func TestTransactionEnrollmentConstraint(t *testing.T) {
	db := openTestDb(t)

	// A transaction keyed to a missing enrollment must be rejected by
	// the store itself, not just the handler pre-check.
	orphan := models.Transaction{ID: 42, Reference: "orphan-ref"}
	err := db.Create(&orphan).Error
	require.Error(t, err)
	assert.Equal(t, ErrKindReference, TranslateError(err))

	user := models.User{Name: "Payer", Email: "payer@x.com", Password: "secret"}
	require.NoError(t, db.Create(&user).Error)
	institution := models.Institution{Name: "Fk School", Email: "fk@x.com"}
	require.NoError(t, db.Create(&institution).Error)
	course := models.Course{InstitutionID: institution.ID, Title: "Bio"}
	require.NoError(t, db.Create(&course).Error)
	enrollment := models.Enrollment{UserID: user.ID, CourseID: course.ID}
	require.NoError(t, db.Create(&enrollment).Error)

	paid := models.Transaction{ID: enrollment.ID, Reference: "paid-ref"}
	require.NoError(t, db.Create(&paid).Error)

	// The paid enrollment cannot be deleted out from under its transaction
	err = db.Delete(&models.Enrollment{}, enrollment.ID).Error
	require.Error(t, err)
	assert.Equal(t, ErrKindReference, TranslateError(err))
}

func TestTranslateErrorInternal(t *testing.T) {
	assert.Equal(t, ErrKindInternal, TranslateError(errors.New("connection refused")))
}
