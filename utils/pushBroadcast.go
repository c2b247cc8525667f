package utils

import (
	"fmt"
	"log"

	"eduplay/database"
	"eduplay/models"
	"eduplay/notifications"
)

// NotifyCourseUpdate pushes a course_update message to every device of
// every learner enrolled in the course the lesson belongs to. Best
// effort: failures are logged and swallowed.
func NotifyCourseUpdate(lesson models.Lesson) {
	db := database.Database.Db

	var module models.Module
	if err := db.First(&module, lesson.ModuleID).Error; err != nil {
		log.Printf("Course update push skipped, module %d not found: %v", lesson.ModuleID, err)
		return
	}

	var enrollments []models.Enrollment
	if err := db.Where("course_id = ?", module.CourseID).Find(&enrollments).Error; err != nil {
		log.Printf("Course update push skipped, enrollments lookup failed: %v", err)
		return
	}
	if len(enrollments) == 0 {
		return
	}

	userIDs := make([]uint, 0, len(enrollments))
	for _, enrollment := range enrollments {
		userIDs = append(userIDs, enrollment.UserID)
	}

	var tokens []models.DeviceToken
	if err := db.Where("user_id IN ?", userIDs).Find(&tokens).Error; err != nil {
		log.Printf("Course update push skipped, token lookup failed: %v", err)
		return
	}

	service := notifications.NewService()
	if !service.Enabled() {
		return
	}

	data := notifications.Data{Type: notifications.TypeCourseUpdate, TargetID: module.CourseID}
	body := fmt.Sprintf("New content in your course: %s", lesson.Title)

	for _, token := range tokens {
		msg := notifications.NewMessage(token.Token, "Course updated", body, data)
		if err := service.Send(msg); err != nil {
			log.Printf("Course update push to device %d failed: %v", token.ID, err)
		}
	}
}
