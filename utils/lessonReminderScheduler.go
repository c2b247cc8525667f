package utils

import (
	"fmt"
	"log"
	"time"

	"eduplay/config"
	"eduplay/database"
	"eduplay/models"
	"eduplay/notifications"

	"github.com/robfig/cron/v3"
)

// logReminder logs scheduler events with timestamp
func logReminder(message string) {
	log.Printf("[LESSON-REMINDER %s] %s", time.Now().Format(time.RFC3339), message)
}

// SendLessonReminders pushes a lesson_reminder message for the newest
// lesson of the reminder window to every registered device.
func SendLessonReminders() {
	db := database.Database.Db
	since := time.Now().Add(-time.Duration(config.AppConfig.ReminderWindowHours) * time.Hour)

	var lessons []models.Lesson
	if err := db.Where("created_at >= ?", since).Order("created_at desc, id desc").Find(&lessons).Error; err != nil {
		logReminder("Error fetching recent lessons: " + err.Error())
		return
	}
	if len(lessons) == 0 {
		return
	}

	var tokens []models.DeviceToken
	if err := db.Find(&tokens).Error; err != nil {
		logReminder("Error fetching device tokens: " + err.Error())
		return
	}
	if len(tokens) == 0 {
		return
	}

	service := notifications.NewService()
	if !service.Enabled() {
		logReminder("Push notifications not configured, skipping run")
		return
	}

	lesson := lessons[0]
	data := notifications.Data{Type: notifications.TypeLessonReminder, TargetID: lesson.ID}
	body := fmt.Sprintf("Continue learning: %s", lesson.Title)

	sent := 0
	for _, token := range tokens {
		msg := notifications.NewMessage(token.Token, "Lesson reminder", body, data)
		if err := service.Send(msg); err != nil {
			logReminder(fmt.Sprintf("Push to device %d failed: %v", token.ID, err))
			continue
		}
		sent++
	}

	logReminder(fmt.Sprintf("Sent %d lesson reminders", sent))
}

// StartLessonReminderScheduler runs the reminder job at the top of
// every hour.
func StartLessonReminderScheduler() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 * * * *", SendLessonReminders); err != nil {
		logReminder("Failed to schedule reminder job: " + err.Error())
		return c
	}
	c.Start()
	logReminder("Lesson reminder scheduler started")
	return c
}
