package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"eduplay/config"
	"eduplay/database"
	"eduplay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSchedulerTest(t *testing.T, providerURL string) {
	config.AppConfig = &config.Config{
		FCMProjectID:        "proj-test",
		PushProviderURL:     providerURL,
		PushServerKey:       "server-key",
		ReminderWindowHours: 24,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
}

func seedLessonAndDevices(t *testing.T, devices int) {
	db := database.Database.Db

	institution := models.Institution{Name: "School", Email: "school@x.com"}
	require.NoError(t, db.Create(&institution).Error)
	course := models.Course{InstitutionID: institution.ID, Title: "Course"}
	require.NoError(t, db.Create(&course).Error)
	module := models.Module{CourseID: course.ID, Title: "Module"}
	require.NoError(t, db.Create(&module).Error)
	lesson := models.Lesson{ModuleID: module.ID, Title: "Fresh Lesson", LessonType: "video", OrderIndex: 1}
	require.NoError(t, db.Create(&lesson).Error)

	for i := 0; i < devices; i++ {
		user := models.User{Name: "U", Email: fmt.Sprintf("u%d@x.com", i), Password: "secret"}
		require.NoError(t, db.Create(&user).Error)
		token := models.DeviceToken{UserID: user.ID, Token: fmt.Sprintf("tok-%d", i)}
		require.NoError(t, db.Create(&token).Error)
	}
}

func TestSendLessonReminders(t *testing.T) {
	var calls int64
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/proj-test/messages:send", r.URL.Path)
		assert.Equal(t, "key=server-key", r.Header.Get("Authorization"))
		atomic.AddInt64(&calls, 1)
	}))
	defer provider.Close()

	setupSchedulerTest(t, provider.URL)
	seedLessonAndDevices(t, 2)

	SendLessonReminders()

	// One push per registered device
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestSendLessonRemindersNoDevices(t *testing.T) {
	var calls int64
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer provider.Close()

	setupSchedulerTest(t, provider.URL)
	seedLessonAndDevices(t, 0)

	SendLessonReminders()

	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestSendLessonRemindersNoRecentLessons(t *testing.T) {
	var calls int64
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer provider.Close()

	setupSchedulerTest(t, provider.URL)

	// Devices exist but there is nothing to remind about
	user := models.User{Name: "U", Email: "u@x.com", Password: "secret"}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token := models.DeviceToken{UserID: user.ID, Token: "tok-0"}
	require.NoError(t, database.Database.Db.Create(&token).Error)

	SendLessonReminders()

	assert.Zero(t, atomic.LoadInt64(&calls))
}
